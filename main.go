package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/siyuan-infoblox/go-imports-order/pkg/cmd"
	"github.com/siyuan-infoblox/go-imports-order/pkg/errors"
)

func main() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Println("unable to read build info")
		os.Exit(1)
	}
	if err := cmd.Execute(info.Main.Version); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
