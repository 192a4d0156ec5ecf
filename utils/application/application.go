// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/Lexer747/scanview/utils/check"
)

type BuildInfo struct {
	commit    string
	goVersion string
	branch    string
	timestamp string
	tag       string
}

//nolint:staticcheck
func MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG string) *BuildInfo {
	if COMMIT == "" && GO_VERSION == "" && BRANCH == "" && TIMESTAMP == "" && TAG == "" {
		return nil
	}
	return &BuildInfo{
		commit:    COMMIT,
		goVersion: GO_VERSION,
		branch:    BRANCH,
		timestamp: TIMESTAMP,
		tag:       TAG,
	}
}

func (b *BuildInfo) Commit() string         { return b.commit }
func (b *BuildInfo) GoVersion() string      { return b.goVersion }
func (b *BuildInfo) Branch() string         { return b.branch }
func (b *BuildInfo) BuildTimestamp() string { return b.timestamp }
func (b *BuildInfo) Tag() string            { return b.tag }

// SharedFlags are the flags every long running subcommand accepts, they control logging and profiling and
// are prefixed so that they can be told apart from the flags which change what a subcommand does.
type SharedFlags struct {
	logFile    *string
	cpuProfile *string
	memProfile *string
}

func NewSharedFlags(f *flag.FlagSet) *SharedFlags {
	return &SharedFlags{
		logFile:    f.String("log", "", "write debug logs to this file. (default no logs)"),
		cpuProfile: f.String("debug-cpuprofile", "", "write a cpu profile and a trace to this file"),
		memProfile: f.String("debug-memprofile", "", "write a heap profile to this file on exit"),
	}
}

func (s *SharedFlags) InitLogging(info *BuildInfo) (toDefer func()) {
	return InitLogging(*s.logFile, info)
}

func (s *SharedFlags) InitCPUProfiling() (toDefer func()) {
	return InitCPUProfiling(*s.cpuProfile)
}

func (s *SharedFlags) InitMemProfile() (toDefer func()) {
	return InitMemProfile(*s.memProfile)
}

func InitLogging(file string, info *BuildInfo) (toDefer func()) {
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create Log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logger := slog.New(h)
		if info != nil {
			logger = logger.With(
				"COMMIT", info.commit,
				"BRANCH", info.branch,
				"GO_VERSION", info.goVersion,
				"BUILD_TIMESTAMP", info.timestamp,
				"TAG", info.tag,
			)
		}
		slog.SetDefault(logger)
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	// If no file is specified we want to stop all logging
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}

func InitCPUProfiling(cpuprofile string) (toDefer func()) {
	if cpuprofile == "" {
		return func() {}
	}
	cpuFile, err := os.Create(cpuprofile)
	check.NoErr(err, "could not create CPU profile")
	err = pprof.StartCPUProfile(cpuFile)
	check.NoErr(err, "could not start CPU profile")
	traceFile, err := os.Create("trace-" + cpuprofile)
	check.NoErr(err, "could not create Trace CPU profile")
	err = trace.Start(traceFile)
	check.NoErr(err, "could not start Trace CPU profile")

	slog.Debug("Started CPU & Trace profile", "path", cpuprofile)
	return func() {
		slog.Debug("Writing CPU profile", "path", cpuprofile)
		trace.Stop()
		pprof.StopCPUProfile()
		check.NoErr(cpuFile.Close(), "failed to close profile")
		check.NoErr(traceFile.Close(), "failed to close profile")
	}
}

func InitMemProfile(memprofile string) (toDefer func()) {
	if memprofile == "" {
		return func() {}
	}
	f, err := os.Create(memprofile)
	check.NoErr(err, "could not create memory profile")
	return func() {
		slog.Debug("Writing memory profile", "path", memprofile)
		runtime.GC() // get up-to-date statistics
		check.NoErr(pprof.WriteHeapProfile(f), "could not write memory profile")
		check.NoErr(f.Close(), "failed to close memory profile")
	}
}
