package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.0.0-dev"

// Definidos via -ldflags "-X .../pkg/version.Version=1.2.3" no build de release.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

// Info identifica o binário que gerou um relatório.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Dirty     bool
}

// Current devolve a versão do binário: ldflags primeiro, depois o build info do Go.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fillFromBuildInfo(info, bi)
	}
	return info
}

// fillFromBuildInfo completa apenas os campos que o ldflags deixou vazios.
func fillFromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if bi == nil {
		return info
	}

	// go install módulo@vX.Y.Z grava a versão do módulo; builds locais trazem "(devel)".
	if (info.Version == "" || info.Version == devVersion) && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" && len(s.Value) >= 7 {
				info.Commit = s.Value[:7]
			}
		case "vcs.time":
			if info.BuildTime == "" {
				if ts, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
				}
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}

	if info.Version == "" {
		info.Version = devVersion
	}
	return info
}

// String renders e.g. "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
func (i Info) String() string {
	ver := i.Version
	if i.Dirty {
		ver += "-dirty"
	}

	switch {
	case i.Commit == "":
		return fmt.Sprintf("%s (development)", ver)
	case i.BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, i.Commit)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, i.Commit, i.BuildTime)
	}
}

// FormatVersion is Current().String(), used by the CLI and in run logs.
func FormatVersion() string {
	return Current().String()
}
