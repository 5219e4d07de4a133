// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/internal/logging"
	"github.com/katalvlaran/coinpath/internal/server"
)

type serveFlags struct {
	graph   graphFlags
	addr    string
	origins []string
}

func newServeCmd() *cobra.Command {
	var sf serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route search over HTTP",
		Long: "Serves a JSON API over one graph: GET /healthz, GET /graph,\n" +
			"POST /route, POST /evaluate and POST /batch. Stops on SIGINT/SIGTERM.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, &sf)
		},
	}

	sf.graph.register(cmd)
	cmd.Flags().StringVar(&sf.addr, "addr", ":8080", "listen address (env "+envAddr+")")
	cmd.Flags().StringSliceVar(&sf.origins, "cors", nil, "allowed browser origins, * for any")

	return cmd
}

func runServe(cmd *cobra.Command, sf *serveFlags) error {
	fromEnv(cmd.Flags().Changed("addr"), envAddr, &sf.addr)

	g, _, err := sf.graph.load()
	if err != nil {
		return err
	}

	var opts []server.Option
	if len(sf.origins) > 0 {
		opts = append(opts, server.WithCORS(sf.origins...))
	}
	log := logging.New("server")
	log.Info("graph loaded", "cities", g.VertexCount(), "roads", g.EdgeCount())

	return server.New(g, log, opts...).ListenAndServe(cmd.Context(), sf.addr)
}
