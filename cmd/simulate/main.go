// Command simulate plays one full run in the terminal, driving the game
// engine with a simple automatic policy. Useful to eyeball balance changes
// without a client.
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"Farol/services/game"
	"Farol/services/poker"

	"github.com/pterm/pterm"
)

// Safety valve, a policy bug must not spin forever.
const maxSteps = 2000

func main() {
	seed := flag.Uint64("seed", 0, "run seed, random when 0")
	delay := flag.Duration("delay", 0, "pause between actions, e.g. 300ms")
	quiet := flag.Bool("quiet", false, "only print the final summary")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	pterm.DefaultHeader.Printfln("Farol simulator - seed %d", *seed)

	run := game.NewRun(*seed)
	steps := 0
	for steps < maxSteps {
		if run.Phase == game.PhaseGameOver || run.Phase == game.PhaseVictory {
			break
		}

		action := nextAction(run)
		if err := run.Apply(action); err != nil {
			pterm.Error.Printfln("%s rejected: %s", action.Type, game.ErrorCode(err))
			break
		}
		steps++

		if !*quiet {
			report(run, action)
		}
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}

	summary(run, steps)
}

// nextAction picks one command for the current phase: take every blind, play
// the biggest same-rank group, walk through the shop without buying.
func nextAction(run *game.RunState) game.Action {
	switch run.Phase {
	case game.PhaseBlindSelect:
		return game.Action{Type: game.ActionSelectBlind}
	case game.PhaseRound:
		if idx, ok := nextToggle(run); ok {
			return game.Action{Type: game.ActionToggleCard, Index: idx}
		}
		return game.Action{Type: game.ActionPlayHand}
	case game.PhaseShop:
		return game.Action{Type: game.ActionLeaveShop}
	}
	return game.Action{Type: game.ActionQuit}
}

// nextToggle returns one hand index that should join the selection. The
// target selection is the biggest group of same-rank cards, five at most;
// ties break on the rank string so the policy stays deterministic.
func nextToggle(run *game.RunState) (int, bool) {
	counts := map[string]int{}
	for _, card := range run.Hand {
		counts[card.Rank]++
	}

	bestRank := ""
	best := 0
	for rank, n := range counts {
		if n > best || (n == best && rank > bestRank) {
			bestRank, best = rank, n
		}
	}

	selected := make(map[int]bool, len(run.Selected))
	for _, idx := range run.Selected {
		selected[idx] = true
	}

	desired := 0
	for idx, card := range run.Hand {
		if card.Rank != bestRank || desired >= 5 {
			continue
		}
		desired++
		if !selected[idx] {
			return idx, true
		}
	}
	return 0, false
}

func report(run *game.RunState, action game.Action) {
	switch action.Type {
	case game.ActionSelectBlind:
		boss := ""
		if run.Blind == game.BlindBoss {
			if def, ok := poker.BossByID(run.BossID); ok {
				boss = " [" + def.Name + "]"
			}
		}
		pterm.DefaultSection.Printfln("Ante %d - %s blind%s, target %d",
			run.Ante, run.Blind, boss, run.Target)
		pterm.Info.Printfln("Hand: %s", handString(run.Hand))

	case game.ActionPlayHand:
		pterm.Info.Printfln("Played %s, round score %d / %d, %d hands left",
			poker.HandName(run.LastHandID), run.RoundScore, run.Target, run.HandsLeft)

		switch run.Phase {
		case game.PhaseShop:
			if co := run.LastCashOut; co != nil {
				pterm.Success.Printfln("Blind beaten! +$%d, money now $%d", co.Total, run.Money)
			}
		case game.PhaseGameOver:
			pterm.Error.Println("Out of hands, the run is over.")
		case game.PhaseVictory:
			pterm.Success.Println("Final boss down!")
		}
	}
}

func handString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.Rank + card.Suit
	}
	return strings.Join(parts, " ")
}

func summary(run *game.RunState, steps int) {
	pterm.DefaultSection.Println("Run summary")

	data := pterm.TableData{
		{"Seed", fmt.Sprintf("%d", run.Seed)},
		{"Outcome", run.Phase},
		{"Ante reached", fmt.Sprintf("%d", run.Ante)},
		{"Blinds beaten", fmt.Sprintf("%d", run.BlindsBeaten)},
		{"Best hand score", fmt.Sprintf("%d", run.BestHandScore)},
		{"Money", fmt.Sprintf("$%d", run.Money)},
		{"Actions taken", fmt.Sprintf("%d", steps)},
	}
	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		fmt.Println(err)
	}

	switch run.Phase {
	case game.PhaseVictory:
		pterm.Success.Println("The run beat the final boss!")
	case game.PhaseGameOver:
		pterm.Error.Println("The run died.")
	default:
		pterm.Warning.Println("Stopped before the run finished.")
	}
}
