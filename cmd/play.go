package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeu5/pazaak-learn/core"
	"github.com/zeu5/pazaak-learn/game"
	"github.com/zeu5/pazaak-learn/policies"
)

func PlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match against the house on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			var house core.Policy = policies.NewStanding()
			if flagChanged("model") {
				p, err := policies.LoadModelPolicy(flags.ModelPath)
				if err != nil {
					return err
				}
				house = p
			}

			in := bufio.NewScanner(os.Stdin)
			you := game.NewPlayer("you", policies.NewHuman(in, os.Stdout))
			dealer := game.NewPlayer("dealer", house)
			match := game.NewMatch(you, dealer, game.WithTurnDelay(time.Second))

			fmt.Printf("First to %d sets wins. Reaching %d points wins a set.\n",
				game.WinningSets, game.ScoreGoal)
			for {
				if _, err := match.PlayRound(you, dealer); err != nil {
					return err
				}
				if winner, ok := match.Winner(); ok {
					fmt.Printf("%s wins the match!\n", winner.Name)
					return nil
				}
				fmt.Print("press enter for the next set ")
				in.Scan()
				match.PrepareNextRound()
			}
		},
	}

	return cmd
}
