// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopheradvance/debugger"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/performance"
	"github.com/jetsetilly/gopheradvance/performance/limiter"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/romloader"
	"github.com/jetsetilly/gopheradvance/scripting"
	"github.com/jetsetilly/gopheradvance/statsview"
	"github.com/jetsetilly/gopheradvance/translate"
	"github.com/jetsetilly/gopheradvance/version"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "SCRIPT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "DEBUG":
		err = debug(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "SCRIPT":
		err = script(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// flags shared by every mode that creates an emulation.
type commonFlags struct {
	bios      *string
	prefs     *string
	log       *bool
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) *commonFlags {
	cf := &commonFlags{
		bios:  md.AddString("bios", "", "BIOS image to use in place of the high-level BIOS"),
		prefs: md.AddString("prefs", "", "preferences for this run only (eg. \"hardware.arm7.hle::false\")"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}

	if statsview.Available() {
		cf.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	return cf
}

// create the GBA according to the common flags. the ROM is loaded if the
// filename is not empty.
func (cf *commonFlags) createGBA(output io.Writer, romFile string) (*hardware.GBA, error) {
	if *cf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if cf.statsview != nil && *cf.statsview {
		statsview.Launch(output)
	}

	// command line preferences are consumed when the preferences are loaded
	// by the new environment
	if *cf.prefs != "" {
		prefs.PushCommandLineStack(*cf.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	gba := hardware.NewGBA(env)

	if *cf.bios != "" {
		ld := romloader.NewLoader(*cf.bios)
		if err := ld.Load(); err != nil {
			return nil, err
		}

		// a real BIOS is only useful if the SWI instruction is allowed to
		// reach it
		env.Prefs.ARM.HLE.Set(false)

		if err := gba.LoadBIOS(ld.Data); err != nil {
			return nil, err
		}
	}

	if romFile != "" {
		ld := romloader.NewLoader(romFile)
		if err := ld.Load(); err != nil {
			return nil, err
		}
		if !ld.Recognised {
			logger.Logf(logger.Allow, "romloader", "unusual file extension for %s", ld.Filename)
		}
		if err := gba.LoadROM(ld.Data); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "romloader", "%s (sha1: %s)", ld.ShortName(), ld.Hash)
	}

	return gba, nil
}

func printSummary(output io.Writer, gba *hardware.GBA) {
	fmt.Fprintln(output, gba.Summary())
	fmt.Fprintln(output, translate.Sprintf("%d cycles (%d frames)", gba.Cycles(), clocks.Frames(gba.Cycles())))
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	limit := md.AddUint64("limit", 0, "stop after this many instructions (0 for no limit)")
	realtime := md.AddBool("realtime", false, "limit emulation to the speed of the real hardware")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GBA ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gba, err := cf.createGBA(output, md.GetArg(0))
	if err != nil {
		return err
	}

	// ctrl-c ends the run but the summary is still printed
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var lim *limiter.Limiter
	if *realtime {
		lim = limiter.NewLimiter(clocks.GBA * 1000000 / clocks.FrameCycles)
		defer lim.Stop()
	}

	var frameCycles int
	var performanceBrake int

	continueCheck := func(cycles int) (bool, error) {
		if lim != nil {
			frameCycles += cycles
			if frameCycles >= clocks.FrameCycles {
				frameCycles -= clocks.FrameCycles
				lim.Wait()
			}
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return false, nil
			default:
			}
		}

		return true, nil
	}

	if *limit > 0 {
		err = gba.RunForInstructionCount(*limit, continueCheck)
	} else {
		err = gba.Run(continueCheck)
	}

	printSummary(output, gba)

	return err
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")
	profile := md.AddString("profile", "none", "run debugger through profiler (cpu, mem, trace)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var romFile string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		romFile = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "AUTO":
		if colorterm.Available() {
			term = &colorterm.ColorTerminal{}
		} else {
			term = &plainterm.PlainTerminal{}
		}
	}

	gba, err := cf.createGBA(output, romFile)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(gba, term)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "debugger", dbg.Start)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddHex("origin", memorymap.OriginROM, "address of the first instruction")
	count := md.AddInt("count", 0, "number of instructions (0 for the whole ROM)")
	thumb := md.AddBool("thumb", false, "disassemble as Thumb instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GBA ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	gba := hardware.NewGBA(env)
	if err := gba.LoadROM(ld.Data); err != nil {
		return err
	}

	n := *count
	if n <= 0 {
		size := 4
		if *thumb {
			size = 2
		}
		n = gba.Mem.ROMSize() / size
	}

	dsm, err := disassembly.FromMemory(gba.Mem, *origin, n, *thumb)
	if err != nil {
		return err
	}

	return dsm.Write(output)
}

func script(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <script.lua> [rom]")

	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var romFile string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	case 2:
		romFile = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	gba, err := cf.createGBA(output, romFile)
	if err != nil {
		return err
	}

	scr := scripting.NewScript(gba, output)
	defer scr.Close()

	return scr.RunFile(md.GetArg(0))
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run emulation through profiler (cpu, mem, trace)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GBA ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	gba, err := cf.createGBA(output, md.GetArg(0))
	if err != nil {
		return err
	}

	return performance.Check(output, prf, gba, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Fprint(output, version.Current().Long())
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}
