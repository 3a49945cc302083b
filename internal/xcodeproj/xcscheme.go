package xcodeproj

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	lldbDebugger = "Xcode.DebuggerFoundation.Debugger.LLDB"
	lldbLauncher = "Xcode.DebuggerFoundation.Launcher.LLDB"
)

type scheme struct {
	XMLName            xml.Name      `xml:"Scheme"`
	LastUpgradeVersion string        `xml:"LastUpgradeVersion,attr"`
	Version            string        `xml:"version,attr"`
	BuildAction        buildAction   `xml:"BuildAction"`
	TestAction         testAction    `xml:"TestAction"`
	LaunchAction       launchAction  `xml:"LaunchAction"`
	ProfileAction      profileAction `xml:"ProfileAction"`
	AnalyzeAction      configAction  `xml:"AnalyzeAction"`
	ArchiveAction      archiveAction `xml:"ArchiveAction"`
}

type buildableReference struct {
	BuildableIdentifier string `xml:"BuildableIdentifier,attr"`
	BlueprintIdentifier string `xml:"BlueprintIdentifier,attr"`
	BuildableName       string `xml:"BuildableName,attr"`
	BlueprintName       string `xml:"BlueprintName,attr"`
	ReferencedContainer string `xml:"ReferencedContainer,attr"`
}

type buildAction struct {
	ParallelizeBuildables     string             `xml:"parallelizeBuildables,attr"`
	BuildImplicitDependencies string             `xml:"buildImplicitDependencies,attr"`
	Entries                   []buildActionEntry `xml:"BuildActionEntries>BuildActionEntry"`
}

type buildActionEntry struct {
	BuildForTesting    string             `xml:"buildForTesting,attr"`
	BuildForRunning    string             `xml:"buildForRunning,attr"`
	BuildForProfiling  string             `xml:"buildForProfiling,attr"`
	BuildForArchiving  string             `xml:"buildForArchiving,attr"`
	BuildForAnalyzing  string             `xml:"buildForAnalyzing,attr"`
	BuildableReference buildableReference `xml:"BuildableReference"`
}

type testAction struct {
	BuildConfiguration           string              `xml:"buildConfiguration,attr"`
	SelectedDebuggerIdentifier   string              `xml:"selectedDebuggerIdentifier,attr"`
	SelectedLauncherIdentifier   string              `xml:"selectedLauncherIdentifier,attr"`
	ShouldUseLaunchSchemeArgsEnv string              `xml:"shouldUseLaunchSchemeArgsEnv,attr"`
	Testables                    []testableReference `xml:"Testables>TestableReference"`
}

type testableReference struct {
	Skipped            string             `xml:"skipped,attr"`
	BuildableReference buildableReference `xml:"BuildableReference"`
}

type launchAction struct {
	BuildConfiguration             string             `xml:"buildConfiguration,attr"`
	SelectedDebuggerIdentifier     string             `xml:"selectedDebuggerIdentifier,attr"`
	SelectedLauncherIdentifier     string             `xml:"selectedLauncherIdentifier,attr"`
	LaunchStyle                    string             `xml:"launchStyle,attr"`
	UseCustomWorkingDirectory      string             `xml:"useCustomWorkingDirectory,attr"`
	IgnoresPersistentStateOnLaunch string             `xml:"ignoresPersistentStateOnLaunch,attr"`
	DebugDocumentVersioning        string             `xml:"debugDocumentVersioning,attr"`
	AllowLocationSimulation        string             `xml:"allowLocationSimulation,attr"`
	Runnable                       *productRunnable   `xml:"BuildableProductRunnable,omitempty"`
}

type productRunnable struct {
	RunnableDebuggingMode string             `xml:"runnableDebuggingMode,attr"`
	BuildableReference    buildableReference `xml:"BuildableReference"`
}

type profileAction struct {
	BuildConfiguration           string           `xml:"buildConfiguration,attr"`
	ShouldUseLaunchSchemeArgsEnv string           `xml:"shouldUseLaunchSchemeArgsEnv,attr"`
	SavedToolIdentifier          string           `xml:"savedToolIdentifier,attr"`
	UseCustomWorkingDirectory    string           `xml:"useCustomWorkingDirectory,attr"`
	DebugDocumentVersioning      string           `xml:"debugDocumentVersioning,attr"`
	Runnable                     *productRunnable `xml:"BuildableProductRunnable,omitempty"`
}

type configAction struct {
	BuildConfiguration string `xml:"buildConfiguration,attr"`
}

type archiveAction struct {
	BuildConfiguration       string `xml:"buildConfiguration,attr"`
	RevealArchiveInOrganizer string `xml:"revealArchiveInOrganizer,attr"`
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func (p *project) buildableReference(t *target) buildableReference {
	return buildableReference{
		BuildableIdentifier: "primary",
		BlueprintIdentifier: t.id,
		BuildableName:       t.buildableName(p.platform),
		BlueprintName:       t.module.Name,
		ReferencedContainer: "container:" + p.container,
	}
}

// encodeScheme renders the shared scheme. It builds every native target and
// lists every test target as a testable, so one scheme covers the project.
func encodeScheme(p *project) ([]byte, error) {
	s := scheme{
		LastUpgradeVersion: "9999",
		Version:            "1.3",
		BuildAction: buildAction{
			ParallelizeBuildables:     "YES",
			BuildImplicitDependencies: "YES",
		},
		TestAction: testAction{
			BuildConfiguration:           configDebug,
			SelectedDebuggerIdentifier:   lldbDebugger,
			SelectedLauncherIdentifier:   lldbLauncher,
			ShouldUseLaunchSchemeArgsEnv: "YES",
		},
		LaunchAction: launchAction{
			BuildConfiguration:             configDebug,
			SelectedDebuggerIdentifier:     lldbDebugger,
			SelectedLauncherIdentifier:     lldbLauncher,
			LaunchStyle:                    "0",
			UseCustomWorkingDirectory:      "NO",
			IgnoresPersistentStateOnLaunch: "NO",
			DebugDocumentVersioning:        "YES",
			AllowLocationSimulation:        "YES",
		},
		ProfileAction: profileAction{
			BuildConfiguration:           configRelease,
			ShouldUseLaunchSchemeArgsEnv: "YES",
			UseCustomWorkingDirectory:    "NO",
			DebugDocumentVersioning:      "YES",
		},
		AnalyzeAction: configAction{BuildConfiguration: configDebug},
		ArchiveAction: archiveAction{BuildConfiguration: configRelease, RevealArchiveInOrganizer: "YES"},
	}

	for _, t := range p.targets {
		notTest := !t.module.IsTest()
		s.BuildAction.Entries = append(s.BuildAction.Entries, buildActionEntry{
			BuildForTesting:    "YES",
			BuildForRunning:    yesNo(notTest),
			BuildForProfiling:  yesNo(notTest),
			BuildForArchiving:  yesNo(notTest),
			BuildForAnalyzing:  "YES",
			BuildableReference: p.buildableReference(t),
		})
	}
	for _, t := range p.testTargets() {
		s.TestAction.Testables = append(s.TestAction.Testables, testableReference{
			Skipped:            "NO",
			BuildableReference: p.buildableReference(t),
		})
	}
	if t := p.runnable(); t != nil {
		s.LaunchAction.Runnable = &productRunnable{RunnableDebuggingMode: "0", BuildableReference: p.buildableReference(t)}
		s.ProfileAction.Runnable = &productRunnable{RunnableDebuggingMode: "0", BuildableReference: p.buildableReference(t)}
	}

	body, err := xml.MarshalIndent(s, "", "   ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode scheme: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
