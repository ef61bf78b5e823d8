package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nightdial/nightdial/internal/app"
	"github.com/nightdial/nightdial/internal/config"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to ./nightdial-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via NIGHTDIAL_STDIO_LOG")
	flag.Parse()

	// Best-effort: send panics and stray prints to a file, since the
	// console is switched to graphics mode while the clock runs.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("NIGHTDIAL_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./nightdial-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New(config.FromEnv())
	a.Logger = logger
	if err := a.Run(os.Stdin); err != nil {
		// Startup failures land here; QUIT and end-of-input return nil
		// and exit 0 like any other clean shutdown.
		fmt.Fprintln(os.Stderr, "nightdial:", err)
		os.Exit(1)
	}
}
