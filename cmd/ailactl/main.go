// ailactl sends beep and flash commands to an Aila device over a USB-MIDI
// serial bridge or a remote MQTT bridge.
//
// Usage:
//
//	ailactl -port /dev/ttyACM0 beep
//	ailactl -broker tcp://broker.example.com:1883 -device workshop flash -duration 500
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kabili207/aila-go/core"
	"github.com/kabili207/aila-go/core/codec"
	"github.com/kabili207/aila-go/transport"
	"github.com/kabili207/aila-go/transport/mqtt"
	"github.com/kabili207/aila-go/transport/serial"
)

func main() {
	var (
		port     = flag.String("port", "", "serial port of the USB-MIDI bridge (e.g. /dev/ttyACM0)")
		baud     = flag.Int("baud", serial.DefaultBaudRate, "serial baud rate")
		broker   = flag.String("broker", "", "MQTT broker URL for a remote bridge (e.g. tcp://host:1883)")
		device   = flag.String("device", "", "device ID for the MQTT bridge topic")
		duration = flag.Uint("duration", 0, "command duration in milliseconds (0 = device default)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ailactl [flags] beep|flash")
		flag.PrintDefaults()
		os.Exit(2)
	}
	command := flag.Arg(0)

	if *duration > 0xFFFF {
		fmt.Fprintln(os.Stderr, "duration must fit in 16 bits")
		os.Exit(2)
	}

	var tr transport.Transport
	switch {
	case *port != "":
		tr = serial.New(serial.Config{
			Port:     *port,
			BaudRate: *baud,
			Logger:   logger,
		})
	case *broker != "":
		tr = mqtt.New(mqtt.Config{
			Broker:   *broker,
			DeviceID: *device,
			Logger:   logger,
		})
	default:
		fmt.Fprintln(os.Stderr, "either -port or -broker is required")
		os.Exit(2)
	}

	if err := tr.Start(context.Background()); err != nil {
		logger.Error("failed to open transport", "error", err)
		os.Exit(1)
	}
	defer tr.Stop()

	ctrl := core.NewController(core.Config{
		Transport: tr,
		Logger:    logger,
	})
	ctrl.SetStatusHandler(func(status string) {
		fmt.Println(status)
	})

	if err := ctrl.SendCommand(command, codec.Args{Duration: uint16(*duration)}); err != nil {
		os.Exit(1)
	}
}
