// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"time"
)

// Layouts of the embedded "vcs.time" setting and of the short date we print.
const (
	govcsTimeLayout = "2006-01-02T15:04:05Z"
	ourTimeLayout   = "20060102"
)

// These variables may be set at build-time by the linker, e.g.
// -ldflags "-X github.com/sunyihoo/evmkit/internal/version.gitCommit=...".
var gitCommit, gitDate string

// VCSInfo represents the git repository state.
// VCSInfo 表示 git 仓库的状态。
type VCSInfo struct {
	Commit string // head commit hash
	Date   string // commit date as YYYYMMDD
	Dirty  bool   // uncommitted changes at build time
}

// VCS returns version control information of the current executable. Linker
// supplied values take precedence over the settings the go tool embeds.
// VCS 返回当前可执行文件的版本控制信息。
func VCS() (VCSInfo, bool) {
	if gitCommit != "" {
		return VCSInfo{Commit: gitCommit, Date: gitDate}, true
	}
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path != ourPath {
		return VCSInfo{}, false
	}
	return buildInfoVCS(info)
}

// buildInfoVCS extracts the vcs.* build settings. Both the revision and a
// parsable commit time are required.
func buildInfoVCS(info *debug.BuildInfo) (VCSInfo, bool) {
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	vcs := VCSInfo{
		Commit: settings["vcs.revision"],
		Dirty:  settings["vcs.modified"] == "true",
	}
	if t, err := time.Parse(govcsTimeLayout, settings["vcs.time"]); err == nil {
		vcs.Date = t.Format(ourTimeLayout)
	}
	return vcs, vcs.Commit != "" && vcs.Date != ""
}
