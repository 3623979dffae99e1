package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Serve       ServeCmd         `cmd:"" help:"Run the tournament server"`
	Play        PlayCmd          `cmd:"" help:"Play a match interactively"`
	Leaderboard LeaderboardCmd   `cmd:"" help:"Show the leaderboard"`
	Watch       WatchCmd         `cmd:"" help:"Follow the live match feed"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsarena"),
		kong.Description("Rock-paper-scissors tournament tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
