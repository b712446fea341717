// Command stampbuild records the build date in an env file so release
// builds can show the right copyright year.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akyairhashvil/breathpace/internal/buildinfo"
	"github.com/akyairhashvil/breathpace/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "stampbuild: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("stampbuild", flag.ContinueOnError)
	fs.SetOutput(out)
	envPath := fs.String("env", ".env.production", "env file to update")
	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := buildinfo.StampEnvFile(*envPath, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Injected %s=%s\n", config.EnvBuildDate, value)
	return nil
}
