package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/jocke-l/vulkantest"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	config := vulkantest.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = vulkantest.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("ERROR: %s", err)
		}
	}

	if err := vulkantest.NewApp(config).Run(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}
