package generators

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/abhisek/mathsprint/internal/quiz"
)

// Compound generates multi-step problems: chained percentage changes,
// arithmetic chains, and profit calculations with commissions.
type Compound struct {
	rng *rand.Rand
}

func NewCompound(rng *rand.Rand) *Compound { return &Compound{rng: rng} }

func (g *Compound) Kind() quiz.Kind         { return quiz.KindCompound }
func (g *Compound) Category() quiz.Category { return quiz.CategoryCompound }

func (g *Compound) Generate(difficulty quiz.Difficulty) quiz.Question {
	switch pick(g.rng, []string{"percentage_operations", "arithmetic_chain", "profit_calculation"}) {
	case "percentage_operations":
		return g.percentageOperations(difficulty)
	case "arithmetic_chain":
		return g.arithmeticChain(difficulty)
	default:
		return g.profitCalculation(difficulty)
	}
}

func (g *Compound) percentageOperations(difficulty quiz.Difficulty) quiz.Question {
	start := randInt(g.rng, 50, 300)

	var final float64
	var text string
	switch difficulty {
	case quiz.Easy:
		incPct := pick(g.rng, []int{10, 20, 25, 50})
		decPct := pick(g.rng, []int{10, 20, 25})
		final = float64(start) * (1 + float64(incPct)/100) * (1 - float64(decPct)/100)
		text = fmt.Sprintf("%d increased by %d%%, then decreased by %d%%", start, incPct, decPct)
	case quiz.Medium:
		pct1 := randInt(g.rng, 10, 30)
		pct2 := randInt(g.rng, 10, 30)
		ops := pick(g.rng, [][2]string{{"increased", "decreased"}, {"decreased", "increased"}})
		temp := applyPct(float64(start), pct1, ops[0])
		final = applyPct(temp, pct2, ops[1])
		text = fmt.Sprintf("%d %s by %d%%, then %s by %d%%", start, ops[0], pct1, ops[1], pct2)
	default:
		pct1 := randInt(g.rng, 5, 25)
		pct2 := randInt(g.rng, 5, 25)
		pct3 := randInt(g.rng, 5, 20)
		final = float64(start) * (1 + float64(pct1)/100) * (1 - float64(pct2)/100) * (1 + float64(pct3)/100)
		text = fmt.Sprintf("%d increased by %d%%, then decreased by %d%%, then increased by %d%%", start, pct1, pct2, pct3)
	}

	answer := roundTo(final, 2)
	canonical := ftoa(answer)
	acceptable := []string{itoa(int(answer)), ftoa(roundTo(answer, 1)), ftoa(answer)}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty, text, canonical, acceptable,
		map[string]any{"start_value": start, "type": "percentage_operations"})
}

func applyPct(v float64, pct int, op string) float64 {
	if op == "increased" {
		return v * (1 + float64(pct)/100)
	}
	return v * (1 - float64(pct)/100)
}

func (g *Compound) arithmeticChain(difficulty quiz.Difficulty) quiz.Question {
	start := randInt(g.rng, 10, 100)

	var result int
	var text string
	switch difficulty {
	case quiz.Easy:
		add := randInt(g.rng, 10, 50)
		mult := randInt(g.rng, 2, 5)
		sub := randInt(g.rng, 10, 50)
		result = (start+add)*mult - sub
		text = fmt.Sprintf("Start with %d, add %d, multiply by %d, then subtract %d", start, add, mult, sub)
	case quiz.Medium:
		add := randInt(g.rng, 20, 80)
		mult := randInt(g.rng, 2, 7)
		div := pick(g.rng, []int{2, 3, 4, 5})
		// Nudge the added value so the division step comes out exact.
		add += (div - (start+add)*mult%div) % div
		sub := randInt(g.rng, 10, 50)
		result = (start+add)*mult/div - sub
		text = fmt.Sprintf("Start with %d, add %d, multiply by %d, divide by %d, then subtract %d", start, add, mult, div, sub)
	default:
		add1 := randInt(g.rng, 10, 50)
		mult := randInt(g.rng, 2, 5)
		sub := randInt(g.rng, 10, 30)
		div := pick(g.rng, []int{2, 3, 4})
		add2 := randInt(g.rng, 5, 20)

		// Nudge the subtracted value so the division step comes out exact.
		r := (start + add1) * mult
		sub += ((r-sub)%div + div) % div
		result = (r-sub)/div + add2

		steps := []string{
			fmt.Sprintf("Start with %d", start),
			fmt.Sprintf("add %d", add1),
			fmt.Sprintf("multiply by %d", mult),
			fmt.Sprintf("subtract %d", sub),
			fmt.Sprintf("divide by %d", div),
			fmt.Sprintf("add %d", add2),
		}
		text = strings.Join(steps, ", then ")
	}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty, text, itoa(result), nil,
		map[string]any{"start_value": start, "type": "arithmetic_chain"})
}

func (g *Compound) profitCalculation(difficulty quiz.Difficulty) quiz.Question {
	buyPrice := randInt(g.rng, 50, 500)

	var netProfit float64
	var text string
	switch difficulty {
	case quiz.Easy:
		sellPrice := buyPrice + randInt(g.rng, 10, 100)
		commissionPct := pick(g.rng, []int{1, 2, 5})
		commission := float64(sellPrice) * float64(commissionPct) / 100
		netProfit = float64(sellPrice-buyPrice) - commission
		text = fmt.Sprintf("Buy at $%d, sell at $%d, commission is %d%%. What is your net profit?", buyPrice, sellPrice, commissionPct)
	case quiz.Medium:
		sellPrice := randInt(g.rng, 50, 600)
		// Round the rate to what the prompt displays so the shown numbers
		// reproduce the expected answer exactly.
		commissionPct := roundTo(1.5+g.rng.Float64()*2.0, 1)
		commission := float64(sellPrice) * commissionPct / 100
		netProfit = float64(sellPrice-buyPrice) - commission
		text = fmt.Sprintf("Buy at $%d, sell at $%d, commission is %.1f%%. What is your net profit?", buyPrice, sellPrice, commissionPct)
	default:
		sellPrice := randInt(g.rng, 50, 600)
		buyCommissionPct := roundTo(1.0+g.rng.Float64(), 1)
		sellCommissionPct := roundTo(1.5+g.rng.Float64()*1.5, 1)
		buyCommission := float64(buyPrice) * buyCommissionPct / 100
		sellCommission := float64(sellPrice) * sellCommissionPct / 100
		netProfit = float64(sellPrice-buyPrice) - buyCommission - sellCommission
		text = fmt.Sprintf("Buy at $%d (%.1f%% commission), sell at $%d (%.1f%% commission). Net profit?", buyPrice, buyCommissionPct, sellPrice, sellCommissionPct)
	}

	answer := roundTo(netProfit, 2)
	acceptable := []string{ftoa(answer), ftoa(roundTo(answer, 1)), itoa(int(answer))}

	return quiz.NewQuestion(g.Kind(), g.Category(), difficulty, text, ftoa(answer), acceptable,
		map[string]any{"buy_price": buyPrice, "type": "profit_calculation"})
}
