package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/ergmee/estimate"
	"github.com/katalvlaran/ergmee/ioformats"
	"github.com/katalvlaran/ergmee/stats"
	"github.com/katalvlaran/ergmee/trace"
	"github.com/spf13/cobra"
)

var (
	networkPath string
	binAttrPath string
	catAttrPath string
	statsFlag   string
	lambdaFlag  float64
	samplerM    int
	seedFlag    int64

	rootCmd = &cobra.Command{
		Use:   "ergmee",
		Short: "Fit exponential random graph model parameters via equilibrium expectation",
	}

	estimateCmd = &cobra.Command{
		Use:   "estimate",
		Short: "Estimate theta for a directed network against a statistic list",
		RunE:  runEstimate,
	}
)

func init() {
	estimateCmd.Flags().StringVar(&networkPath, "network", "", "path to the Pajek-like network file (required)")
	estimateCmd.Flags().StringVar(&binAttrPath, "binattr", "", "path to a binary attribute file")
	estimateCmd.Flags().StringVar(&catAttrPath, "catattr", "", "path to a categorical attribute file")
	estimateCmd.Flags().StringVar(&statsFlag, "stats", "Arc", "comma-separated statistic names")
	estimateCmd.Flags().Float64Var(&lambdaFlag, "lambda", 2.0, "alternating-statistic decay constant")
	estimateCmd.Flags().IntVar(&samplerM, "sampler-m", 1000, "sampler proposals per call")
	estimateCmd.Flags().Int64Var(&seedFlag, "seed", 0, "RNG seed (0 selects the fixed default stream)")
	_ = estimateCmd.MarkFlagRequired("network")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	slog.Info("loading network", "path", networkPath)
	g, err := ioformats.LoadNetwork(networkPath)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	if binAttrPath != "" {
		attr, err := ioformats.LoadBinaryAttribute(binAttrPath, g.NumNodes())
		if err != nil {
			return fmt.Errorf("load binary attribute: %w", err)
		}
		if err := g.SetBinAttr(attr.Values); err != nil {
			return fmt.Errorf("set binary attribute: %w", err)
		}
	}
	if catAttrPath != "" {
		attr, err := ioformats.LoadCategoricalAttribute(catAttrPath, g.NumNodes())
		if err != nil {
			return fmt.Errorf("load categorical attribute: %w", err)
		}
		if err := g.SetCatAttr(attr.Values); err != nil {
			return fmt.Errorf("set categorical attribute: %w", err)
		}
	}

	kinds, err := parseStatsFlag(statsFlag)
	if err != nil {
		return fmt.Errorf("parse --stats: %w", err)
	}
	fns, labels, err := stats.Bind(kinds, g, lambdaFlag)
	if err != nil {
		return fmt.Errorf("bind statistics: %w", err)
	}

	cfg := estimate.DefaultConfig()
	cfg.Lambda = lambdaFlag
	cfg.SamplerM = samplerM
	cfg.Seed = seedFlag

	base := strings.TrimSuffix(filepath.Base(networkPath), filepath.Ext(networkPath))
	thetaPath := fmt.Sprintf("theta_values_%s.txt", base)
	dzaPath := fmt.Sprintf("dzA_values_%s.txt", base)

	slog.Info("network loaded", "nodes", g.NumNodes(), "arcs", g.NumArcs(), "density", g.Density())

	tw, err := trace.NewThetaWriter(thetaPath, labels)
	if err != nil {
		return fmt.Errorf("open theta trace: %w", err)
	}
	defer tw.Close()
	dw, err := trace.NewDzAWriter(dzaPath, labels)
	if err != nil {
		return fmt.Errorf("open dzA trace: %w", err)
	}
	defer dw.Close()

	slog.Info("starting estimation", "statistics", labels, "sampler_m", cfg.SamplerM, "lambda", cfg.Lambda)

	outcome, err := estimate.Run(context.Background(), cfg, g, fns, tw, dw)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	slog.Info("estimation complete", "m1", outcome.M1, "m", outcome.M, "theta", outcome.Theta)
	return nil
}

func parseStatsFlag(flagValue string) ([]stats.Kind, error) {
	names := strings.Split(flagValue, ",")
	kinds := make([]stats.Kind, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := stats.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
