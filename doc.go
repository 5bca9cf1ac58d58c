/*
Package fotoai connects LLM agents to a running Adobe Photoshop instance.

Commands travel over a local Socket.IO proxy that forwards them to a
Photoshop UXP plugin. On top of that transport the package assembles a
named tool surface (create documents, edit layers, make selections, apply
filters, export images), an MCP server exposing those tools to any MCP
client, an agent harness that drives them from natural-language prompts,
and an HTTP API over cloud object storage for uploading images and
triggering agent jobs.

# Architecture

The stack is assembled hexagonally. The transport (internal/photoshop) is
a Sender port with one websocket client behind it; the tool surface
(internal/photoshop/tools) is transport-agnostic and shared unchanged by
the MCP adapter and the agent harness; storage is an ObjectStore port with
an S3-compatible bucket backend and an in-memory test double.

# Usage

Assemble the application from environment configuration and open a chat
session:

	package main

	import (
		"context"
		"log"
		"os"

		fotoai "github.com/Vrun1506/foto-AI"
		"github.com/Vrun1506/foto-AI/internal/config"
	)

	func main() {
		app := fotoai.New(config.Load())
		defer app.Close()

		harness, err := app.Harness()
		if err != nil {
			log.Fatal(err)
		}

		runner := fotoai.NewRunner()
		runner.Input = os.Stdin
		runner.Output = os.Stdout

		if err := runner.Run(context.Background(), harness.NewSession()); err != nil {
			log.Fatal(err)
		}
	}

The proxy must be reachable (default http://localhost:3001) and the
Photoshop plugin connected before commands succeed; every tool reports a
connection failure distinctly from an in-application failure.
*/
package fotoai
