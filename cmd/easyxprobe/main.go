// Command easyxprobe verifies that the host graphics library can be
// located, loaded and initialized, and prints what it finds. Useful
// when setting up a machine or debugging library search paths.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/easyx-go/easyx"
)

func main() {
	configPath := flag.String("config", "", "read window settings from a TOML file")
	libPath := flag.String("lib", "", "explicit path to the host library")
	flag.Parse()

	if *libPath != "" {
		os.Setenv("EASYX_LIBRARY_PATH", *libPath)
	}

	config := easyx.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = easyx.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "easyxprobe:", err)
			os.Exit(1)
		}
	}
	config.Window.ShowConsole = true

	w, err := easyx.InitConfig(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "easyxprobe: load failed:", err)
		os.Exit(1)
	}
	defer w.Close()

	fmt.Println("version: ", easyx.Version())
	fmt.Printf("surface:  %dx%d\n", w.Width(), w.Height())
	fmt.Printf("hwnd:     %#x\n", w.HWnd())

	w.SetTextColor(easyx.LightGreen)
	w.OutTextXY(10, 10, "easyxprobe: host library loaded")
	w.Delay(1500)
}
