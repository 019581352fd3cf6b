package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/jdudley/helloserver/installers"

	"github.com/jdudley/helloserver/server"
	"github.com/urfave/cli/v2"
)

const defaultPort uint = 10005

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()
	app := newApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func newApp() *cli.App {
	var bindPort uint = defaultPort

	app := cli.NewApp()
	app.Name = "helloserver"
	app.Usage = "An HTTP server that answers Hello, World! to every request"
	app.Flags = []cli.Flag{
		&cli.UintFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "Port to bind the server",
			Destination: &bindPort,
			Value:       bindPort,
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if err := validatePort(bindPort); err != nil {
			return err
		}
		return server.Run(ctx.Context, "0.0.0.0", bindPort)
	}
	app.Commands = []*cli.Command{
		manifestCmd(),
	}
	return app
}

// validatePort rejects values outside the TCP port range. Port 0 would bind
// an arbitrary ephemeral port instead of the one the operator asked for.
func validatePort(port uint) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	return nil
}

func manifestCmd() *cli.Command {
	var templateFile string = "deploy/k8s.yaml.tmpl"
	var name string = "helloserver"
	var namespace string = "default"
	var image string = "helloserver:latest"
	var replicas uint = 2

	return &cli.Command{
		Name:  "manifest",
		Usage: "Render the Kubernetes deployment manifest to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Usage:       "Manifest template file (use - for stdin)",
				Destination: &templateFile,
				Value:       templateFile,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Name for the deployment and service",
				Destination: &name,
				Value:       name,
			},
			&cli.StringFlag{
				Name:        "namespace",
				Usage:       "Target namespace",
				Destination: &namespace,
				Value:       namespace,
			},
			&cli.StringFlag{
				Name:        "image",
				Usage:       "Container image to deploy",
				Destination: &image,
				Value:       image,
			},
			&cli.UintFlag{
				Name:        "replicas",
				Usage:       "Number of replicas",
				Destination: &replicas,
				Value:       replicas,
			},
		},
		Action: func(ctx *cli.Context) error {
			return installers.K8S(ctx.Context, os.Stdout, templateFile, installers.Params{
				Name:      name,
				Namespace: namespace,
				Image:     image,
				Port:      defaultPort,
				Replicas:  replicas,
			})
		},
	}
}
