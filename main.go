package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"outpost/pkg/config"
	"outpost/pkg/engine/terminal"
	"outpost/pkg/engine/world"
	"outpost/pkg/game/colony"
	"outpost/pkg/game/connectivity"
	"outpost/pkg/game/devtools"
	"outpost/pkg/game/maploader"
	"outpost/pkg/game/renderer/tui"
)

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

func initGettext(localeDir, locale string) {
	gotext.Configure(localeDir, locale, "default")
}

// logMessage adds a translated, formatted message to the colony's message log
func logMessage(c *colony.Colony, key string, a ...any) {
	c.AddMessage("%s", dynamicGet(key, a...))
}

// reportDisconnected logs one message per disconnected structure that needs a connection
func reportDisconnected(c *colony.Colony) {
	for _, s := range c.DisconnectedStructures() {
		if !s.Info().RequiresConnection {
			continue
		}
		logMessage(c, "STRUCTURE_DISCONNECTED", dynamicGet(s.Name()), s.Position)
	}
}

// walkFrom prints the raw reachable set from an arbitrary coordinate
func walkFrom(r *tui.TUIRenderer, c *colony.Colony, from string) error {
	start, err := world.ParseCoordinate(from)
	if err != nil {
		return err
	}
	reached := connectivity.NewReachableSet()
	if err := connectivity.Walk(start, c.Map, reached); err != nil {
		return err
	}
	fmt.Println()
	r.RenderMap(c, reached)
	r.RenderReachable(reached)
	return nil
}

func main() {
	cfg := config.Load()

	mapPath := flag.String("map", cfg.MapPath, "colony map file (YAML)")
	locale := flag.String("locale", cfg.Locale, "message language")
	localeDir := flag.String("locales", cfg.LocaleDir, "directory holding gettext catalogs")
	from := flag.String("from", "", "also print the tiles reachable from x,y")
	dump := flag.String("dump", "", "write a plain-text connectivity dump to this file")
	noColor := flag.Bool("no-color", cfg.NoColor, "disable colored output")
	flag.Parse()

	initGettext(*localeDir, *locale)
	color.Enable = !*noColor && terminal.IsInteractive()

	c, err := maploader.Load(*mapPath)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Cannot load map: %v", err)
	}
	log.Printf("[APP] [INFO] Loaded %s (%dx%d, %d structures)", *mapPath, c.Map.Width(), c.Map.Height(), c.StructureCount())

	c.CheckConnectedness()
	logMessage(c, "MAP_LOADED", c.Name, c.StructureCount())
	reportDisconnected(c)

	r := tui.New(os.Stdout)
	r.Init()
	r.RenderFrame(c)

	if *from != "" {
		if err := walkFrom(r, c, *from); err != nil {
			log.Printf("[APP] [ERROR] Cannot walk from %s: %v", *from, err)
			os.Exit(1)
		}
	}

	if *dump != "" {
		path, err := devtools.DumpConnectivityToFile(c, *dump)
		if err != nil {
			log.Fatalf("[APP] [FATAL] Cannot write dump: %v", err)
		}
		log.Printf("[APP] [INFO] Wrote connectivity dump to %s", path)
	}
}
