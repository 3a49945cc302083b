package xcodeproj

import (
	"fmt"

	"howett.net/plist"
)

type schemeManagement struct {
	SchemeUserState               map[string]schemeUserState `plist:"SchemeUserState"`
	SuppressBuildableAutocreation map[string]suppression     `plist:"SuppressBuildableAutocreation"`
}

type schemeUserState struct {
	OrderHint int  `plist:"orderHint"`
	IsShown   bool `plist:"isShown"`
}

type suppression struct {
	Primary bool `plist:"primary"`
}

// encodeSchemeManagement renders the scheme management descriptor. It puts
// the generated scheme first and suppresses the schemes the IDE would
// otherwise infer for each target.
func encodeSchemeManagement(p *project) ([]byte, error) {
	doc := schemeManagement{
		SchemeUserState: map[string]schemeUserState{
			p.schemeName: {OrderHint: 0, IsShown: true},
		},
		SuppressBuildableAutocreation: make(map[string]suppression, len(p.targets)),
	}
	for _, t := range p.targets {
		doc.SuppressBuildableAutocreation[t.id] = suppression{Primary: true}
	}

	body, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode scheme management: %w", err)
	}
	return append(body, '\n'), nil
}
