package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goorgb/goorgb/protocol"
)

var (
	cmdList = &cobra.Command{
		Use:               `list`,
		Short:             `list the controllers exposed by the server`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               listControllers,
	}

	cmdGet = &cobra.Command{
		Use:               `get <controller id>`,
		Short:             `show the zones, modes and LEDs of one controller`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               getController,
	}

	cmdColor = &cobra.Command{
		Use:               `color <controller id> <rrggbb>`,
		Short:             `set every LED of a controller to one color`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               colorController,
	}

	cmdProfiles = &cobra.Command{
		Use:               `profiles`,
		Short:             `list the profiles known to the server`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               listProfiles,
	}

	cmdProfile = &cobra.Command{
		Use:   `profile`,
		Short: `interact with server profiles`,
		Run:   usage,
	}

	cmdProfileLoad = &cobra.Command{
		Use:               `load <name>`,
		Short:             `load the named profile`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               loadProfile,
	}

	cmdProfileSave = &cobra.Command{
		Use:               `save <name>`,
		Short:             `save the current configuration as the named profile`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               saveProfile,
	}

	cmdProfileDelete = &cobra.Command{
		Use:               `delete <name>`,
		Short:             `delete the named profile`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               deleteProfile,
	}
)

func init() {
	cmdProfile.AddCommand(cmdProfileLoad)
	cmdProfile.AddCommand(cmdProfileSave)
	cmdProfile.AddCommand(cmdProfileDelete)
}

func usage(c *cobra.Command, args []string) {
	_ = c.Usage()
}

func listControllers(c *cobra.Command, args []string) {
	count, err := client.GetControllerCount()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed querying controller count`)
	}

	for i := uint32(0); i < count; i++ {
		controller, err := client.GetController(i)
		if err != nil {
			logger.WithFields(logrus.Fields{
				`controller`: i,
				`error`:      err,
			}).Fatalln(`Failed querying controller`)
		}
		fmt.Printf("%d: %s (%s, %d LEDs)\n", i, controller.Name, controller.Type, len(controller.Leds))
	}
}

func getController(c *cobra.Command, args []string) {
	id := parseControllerID(c, args)

	controller, err := client.GetController(id)
	if err != nil {
		logger.WithFields(logrus.Fields{
			`controller`: id,
			`error`:      err,
		}).Fatalln(`Failed querying controller`)
	}

	fmt.Printf("Name:        %s\n", controller.Name)
	fmt.Printf("Type:        %s\n", controller.Type)
	fmt.Printf("Vendor:      %s\n", controller.Vendor)
	fmt.Printf("Description: %s\n", controller.Description)
	fmt.Printf("Version:     %s\n", controller.Version)
	fmt.Printf("Serial:      %s\n", controller.Serial)
	fmt.Printf("Location:    %s\n", controller.Location)

	fmt.Printf("Zones:\n")
	for i, zone := range controller.Zones {
		fmt.Printf("  %d: %s (%s, %d LEDs)\n", i, zone.Name, zone.Type, zone.LedsCount)
	}

	fmt.Printf("Modes:\n")
	for i, mode := range controller.Modes {
		marker := ` `
		if int32(i) == controller.ActiveMode {
			marker = `*`
		}
		fmt.Printf("  %s %d: %s\n", marker, i, mode.Name)
	}

	fmt.Printf("LEDs:\n")
	for i, led := range controller.Leds {
		fmt.Printf("  %d: %s\n", i, led.Name)
	}
}

func colorController(c *cobra.Command, args []string) {
	if len(args) != 2 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing controller ID or color`)
	}

	id := parseControllerID(c, args[:1])

	color, err := parseColor(args[1])
	if err != nil {
		logger.WithFields(logrus.Fields{
			`color`: args[1],
			`error`: err,
		}).Fatalln(`Invalid color, expected rrggbb hex`)
	}

	controller, err := client.GetController(id)
	if err != nil {
		logger.WithFields(logrus.Fields{
			`controller`: id,
			`error`:      err,
		}).Fatalln(`Failed querying controller`)
	}

	colors := make([]protocol.Color, len(controller.Leds))
	for i := range colors {
		colors[i] = color
	}

	if err := client.UpdateLEDs(id, colors); err != nil {
		logger.WithFields(logrus.Fields{
			`controller`: id,
			`error`:      err,
		}).Fatalln(`Failed updating LEDs`)
	}
}

func listProfiles(c *cobra.Command, args []string) {
	profiles, err := client.GetProfiles()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed querying profiles`)
	}

	for _, name := range profiles {
		fmt.Println(name)
	}
}

func loadProfile(c *cobra.Command, args []string) {
	if err := client.LoadProfile(parseProfileName(c, args)); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed loading profile`)
	}
}

func saveProfile(c *cobra.Command, args []string) {
	if err := client.SaveProfile(parseProfileName(c, args)); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed saving profile`)
	}
}

func deleteProfile(c *cobra.Command, args []string) {
	if err := client.DeleteProfile(parseProfileName(c, args)); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed deleting profile`)
	}
}

func parseControllerID(c *cobra.Command, args []string) uint32 {
	if len(args) < 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing controller ID`)
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		logger.WithFields(logrus.Fields{
			`controller`: args[0],
			`error`:      err,
		}).Fatalln(`Invalid controller ID`)
	}

	return uint32(id)
}

func parseProfileName(c *cobra.Command, args []string) string {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing profile name`)
	}

	return args[0]
}

func parseColor(s string) (protocol.Color, error) {
	if len(s) == 7 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return protocol.Color{}, fmt.Errorf("expected 6 hex digits, got %d", len(s))
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return protocol.Color{}, err
	}

	return protocol.Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
