// Command specfun evaluates catalogue functions and zero sequences from the
// shell, mainly for spot-checking kernels and validation behavior.
package main

import (
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strike65/specials"
	"github.com/strike65/specials/i18n"
)

var (
	flagN      int
	flagM      int
	flagOrder  int
	flagLambda float64
	flagStart  int
	flagCount  int
	flagLang   string
	verbose    bool

	log *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "specfun",
		Short:         "evaluate special functions and zero sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				log, err = zap.NewDevelopment()
			} else {
				log = zap.NewNop()
			}
			if err != nil {
				return err
			}
			if flagLang != "" {
				i18n.SetLanguage(flagLang)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&flagLang, "lang", "", "message language (BCP 47)")

	eval := &cobra.Command{
		Use:   "eval <function> <x> [y]",
		Short: "evaluate one catalogue function at a point",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runEval,
	}
	eval.Flags().IntVar(&flagN, "n", 0, "degree")
	eval.Flags().IntVar(&flagM, "m", 0, "secondary order")
	eval.Flags().IntVar(&flagOrder, "order", 0, "derivative order (polygamma)")
	eval.Flags().Float64Var(&flagLambda, "lambda", 0, "continuous parameter")

	zeros := &cobra.Command{
		Use:   "zeros <family>",
		Short: "retrieve a zero sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  runZeros,
	}
	zeros.Flags().IntVar(&flagStart, "start", 0, "zero-based start index (Airy families)")
	zeros.Flags().IntVar(&flagCount, "count", 0, "number of zeros (Airy families)")
	zeros.Flags().IntVar(&flagN, "n", 0, "degree/order (self-sized families)")

	root.AddCommand(eval, zeros)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	name := args[0]
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad evaluation point %q: %w", args[1], err)
	}
	y := 0.0
	if len(args) == 3 {
		if y, err = strconv.ParseFloat(args[2], 64); err != nil {
			return fmt.Errorf("bad second argument %q: %w", args[2], err)
		}
	}
	log.Debug("eval", zap.String("function", name), zap.Float64("x", x))

	var v any
	var evalErr error
	switch name {
	case "bspline":
		v, evalErr = specials.CardinalBSpline(flagN, x)
	case "bspline-prime":
		v, evalErr = specials.CardinalBSplinePrime(flagN, x)
	case "airy-ai":
		v, evalErr = specials.AiryAi(x)
	case "airy-bi":
		v, evalErr = specials.AiryBi(x)
	case "digamma":
		v, evalErr = specials.Digamma(x)
	case "trigamma":
		v, evalErr = specials.Trigamma(x)
	case "polygamma":
		v, evalErr = specials.Polygamma(flagOrder, x)
	case "zeta":
		v, evalErr = specials.Zeta(x)
	case "gegenbauer":
		v, evalErr = specials.Gegenbauer(flagN, flagLambda, x)
	case "hermite":
		v, evalErr = specials.Hermite(flagN, x)
	case "lambert-w0":
		v, evalErr = specials.LambertW0(x)
	case "lambert-wm1":
		v, evalErr = specials.LambertWm1(x)
	case "legendre-p":
		v, evalErr = specials.LegendreP(flagN, x)
	case "legendre-q":
		v, evalErr = specials.LegendreQ(flagN, x)
	case "assoc-legendre-p":
		v, evalErr = specials.AssocLegendreP(flagN, flagM, x)
	case "legendre-stieltjes":
		v, evalErr = specials.LegendreStieltjes(flagN, x)
	case "spherical-harmonic":
		var c complex128
		c, evalErr = specials.SphericalHarmonic(flagN, flagM, x, y)
		v = map[string]float64{"re": real(c), "im": imag(c)}
	default:
		return fmt.Errorf("unknown function %q", name)
	}
	return emit(name, v, evalErr)
}

func runZeros(cmd *cobra.Command, args []string) error {
	name := args[0]
	log.Debug("zeros", zap.String("family", name),
		zap.Int("start", flagStart), zap.Int("count", flagCount), zap.Int("n", flagN))

	var v any
	var evalErr error
	switch name {
	case "airy-ai":
		v, evalErr = specials.AiryAiZeros[float64](flagStart, flagCount)
	case "airy-bi":
		v, evalErr = specials.AiryBiZeros[float64](flagStart, flagCount)
	case "legendre":
		v, evalErr = specials.LegendreZeros[float64](flagN)
	case "hermite":
		v, evalErr = specials.HermiteZeros[float64](flagN)
	case "legendre-stieltjes":
		v, evalErr = specials.LegendreStieltjesZeros[float64](flagN)
	default:
		return fmt.Errorf("unknown zero family %q", name)
	}
	return emit(name, v, evalErr)
}

func emit(name string, v any, evalErr error) error {
	if evalErr != nil {
		if b := specials.EncodeError(evalErr); b != nil {
			fmt.Println(string(b))
			return fmt.Errorf("%s: %s", name, evalErr)
		}
		return evalErr
	}
	b, err := json.Marshal(map[string]any{"function": name, "result": v})
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
