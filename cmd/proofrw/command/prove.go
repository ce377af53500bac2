package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mitchellh/cli"

	"github.com/proofrw/proofrw/pkg/rewrite"
	"github.com/proofrw/proofrw/pkg/sexpr"
)

// defaultMaxIter is the iteration budget used when -max-iter is not
// given.
const defaultMaxIter = 10000

// ProveCommand loads a knowledge base and a theorem file and attempts
// every conjecture, printing a proof path on success or a failure
// notice otherwise. It is the "iterate over conjectures" half of
// the two small top-level entry programs this tool exposes.
type ProveCommand struct {
	Meta
}

func (c *ProveCommand) Help() string {
	return "Usage: proofrw prove [-max-iter N] [-weight W] <kb.scm> <test.scm>\n\n" +
		"  Load a knowledge base and a theorem file, then attempt to prove\n" +
		"  every theorem, printing each successful proof's rewrite path.\n\n" +
		"Options:\n" +
		"  -max-iter N   search iteration budget (default 10000)\n" +
		"  -weight W     weight of the built-in size-ratio heuristic (default 1.0)\n"
}

func (c *ProveCommand) Synopsis() string {
	return "Attempt to prove every theorem in a theorem file"
}

func (c *ProveCommand) Run(args []string) int {
	flags := c.FlagSet("prove")
	maxIter := flags.Int("max-iter", defaultMaxIter, "search iteration budget")
	weight := flags.Float64("weight", 1.0, "weight of the built-in size-ratio heuristic")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	rest := flags.Args()
	if len(rest) != 2 {
		c.UI.Error("prove requires two arguments: the knowledge base file and the theorem file")
		return 1
	}
	kbPath, thmPath := rest[0], rest[1]

	c.Logger.Warn("keep an eye on memory usage; terminate this process if the search grows unbounded")

	codec := sexpr.NewCodec()
	rules, err := c.loadKB(codec, kbPath)
	if err != nil {
		return 1
	}

	theorems, err := c.loadTheorems(codec, thmPath)
	if err != nil {
		return 1
	}

	rewriter := rewrite.NewRewriter(codec.Table, *maxIter)
	for _, rule := range rules {
		rewriter.AddRule(rule)
	}
	rewriter.AddHeuristic(*weight, rewrite.SizeRatio)
	rewriter.OnProgress(func(p rewrite.Progress) {
		c.Logger.Debug("search progress",
			"iteration", p.Iteration,
			"frontier_size", p.FrontierSize,
			"visited_size", p.VisitedSize,
		)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	for _, thm := range theorems {
		c.UI.Output(fmt.Sprintf("⌛ Proving %s ...", codec.Interner.MustResolve(thm.Name)))
		c.proveTheorem(ctx, codec, rewriter, thm)
	}

	return 0
}

// proveTheorem attempts every equiv conjunct of thm's body and prints
// the outcome. A theorem whose body is an and of equivs proves each
// conjunct independently and concatenates their paths before printing
// a single QED; any conjunct's failure fails the whole theorem.
func (c *ProveCommand) proveTheorem(ctx context.Context, codec *sexpr.Codec, rewriter *rewrite.Rewriter, thm rewrite.Theorem) {
	steps, ok := c.proveExpr(ctx, codec, rewriter, thm.Body)
	if !ok {
		c.UI.Output(color.RedString("❌ Statement could not be proven."))
		return
	}
	for _, step := range steps {
		c.UI.Output(sexpr.Print(codec.ExprToSexp(step)))
	}
	c.UI.Output(color.GreenString("✅ QED"))
}

// proveExpr recurses through an and-of-equivs theorem body, proving
// each equiv conjunct with the rewriter and printing the
// "Going to prove" announcement for each one as it starts.
func (c *ProveCommand) proveExpr(ctx context.Context, codec *sexpr.Codec, rewriter *rewrite.Rewriter, expr rewrite.Expr) ([]rewrite.Expr, bool) {
	if expr.Kind() == rewrite.KindPropOp && expr.Op() == rewrite.AndID {
		var steps []rewrite.Expr
		for _, arg := range expr.Args() {
			sub, ok := c.proveExpr(ctx, codec, rewriter, arg)
			if !ok {
				return nil, false
			}
			steps = append(steps, sub...)
		}
		return steps, true
	}

	if expr.Kind() == rewrite.KindPropOp && expr.Op() == rewrite.EquivID {
		args := expr.Args()
		left, right := args[0], args[1]
		c.UI.Output(fmt.Sprintf("ℹ️ Going to prove that %s is equivalent to %s",
			sexpr.Print(codec.ExprToSexp(left)), sexpr.Print(codec.ExprToSexp(right))))
		return rewriter.Prove(ctx, left, right)
	}

	c.Logger.Error("theorem body is not an equiv or an and of equivs", "form", sexpr.Print(codec.ExprToSexp(expr)))
	return nil, false
}

var _ cli.Command = (*ProveCommand)(nil)
