package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/limingzhe/orca/internal/target"
	"github.com/limingzhe/orca/internal/x86"
	"github.com/limingzhe/orca/internal/x86/compress"
)

var (
	showTable   = flag.Bool("table", false, "Dump the EVEX to VEX compression tables")
	showCPU     = flag.Bool("cpu", false, "Probe host CPU features")
	profilePath = flag.String("target", "", "Load target profile from a TOML file")
	verbose     = flag.Bool("v", false, "Verbose pass logging")
)

func main() {
	flag.Parse()

	if flag.NFlag() == 0 {
		fmt.Println("orcavex - EVEX to VEX compression inspector")
		fmt.Println()
		fmt.Println("Usage: orcavex [options]")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -table         Dump the compression tables")
		fmt.Println("  -cpu           Probe host CPU features")
		fmt.Println("  -target FILE   Load target profile from a TOML file")
		fmt.Println("  -v             Verbose pass logging")
		fmt.Println()
		fmt.Println("Without -table/-cpu the tool compresses a built-in demo function.")
		os.Exit(0)
	}

	if *showTable {
		fmt.Println("=== EVEX to VEX (128) ===")
		spew.Dump(compress.Entries(x86.Width128))
		fmt.Println("=== EVEX to VEX (256) ===")
		spew.Dump(compress.Entries(x86.Width256))
		return
	}

	if *showCPU {
		spew.Dump(target.Detect())
		return
	}

	// 目标档案: 指定了文件就加载，否则探测宿主
	var profile *target.Profile
	if *profilePath != "" {
		p, err := target.Load(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading target profile: %v\n", err)
			os.Exit(1)
		}
		profile = p
	} else {
		profile = target.Detect()
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		log = l
	}

	fn := buildDemoFunction()

	fmt.Println("=== Before ===")
	fmt.Print(fn)

	pass := compress.New(profile, compress.WithLogger(log))
	pm := x86.NewPassManager()
	pm.AddPass(pass)
	changed := pm.Run(fn)

	fmt.Println()
	fmt.Println("=== After ===")
	fmt.Print(fn)

	fmt.Println()
	fmt.Printf("changed: %v\n", changed)

	out, err := pass.Report().JSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// buildDemoFunction 构造一段覆盖各种压缩结果的演示代码
func buildDemoFunction() *x86.Function {
	fn := x86.NewFunction("demo")
	bb := fn.NewBlock("entry")

	// 可压缩
	bb.Add(x86.NewInstruction(x86.VADDPSZ128rr,
		x86.RegOperand(x86.XMM0), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2)))
	bb.Add(x86.NewInstruction(x86.VMULPDZ256rr,
		x86.RegOperand(x86.YMM3), x86.RegOperand(x86.YMM4), x86.RegOperand(x86.YMM5)))
	bb.Add(x86.NewInstruction(x86.VALIGNQZ128rri,
		x86.RegOperand(x86.XMM0), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2),
		x86.ImmOperand(3)))
	bb.Add(x86.NewInstruction(x86.VSHUFF32X4Z256rri,
		x86.RegOperand(x86.YMM0), x86.RegOperand(x86.YMM1), x86.RegOperand(x86.YMM2),
		x86.ImmOperand(2)))

	// 不可压缩: 高位寄存器、512 位、带掩码
	bb.Add(x86.NewInstruction(x86.VADDPSZ128rr,
		x86.RegOperand(x86.XMM20), x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2)))
	bb.Add(x86.NewInstruction(x86.VADDPSZrr,
		x86.RegOperand(x86.ZMM0), x86.RegOperand(x86.ZMM1), x86.RegOperand(x86.ZMM2)))
	bb.Add(x86.NewInstruction(x86.VADDPSZ128rrk,
		x86.RegOperand(x86.XMM0), x86.RegOperand(x86.K1),
		x86.RegOperand(x86.XMM1), x86.RegOperand(x86.XMM2)))

	return fn
}
