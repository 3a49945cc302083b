package xcodeproj

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace scopes the name-based UUIDs used for project object identifiers.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/specialistvlad/pkgproj/xcodeproj"))

// objectID returns the 24 hex digit identifier for an object of the given
// kind and name. Equal inputs always yield equal identifiers.
func objectID(kind, name string) string {
	u := uuid.NewSHA1(idNamespace, []byte(kind+"/"+name))
	hex := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))
	return hex[:24]
}
