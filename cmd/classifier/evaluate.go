package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"InvestorClassifier/internal/client"
	"InvestorClassifier/internal/metrics"
	"InvestorClassifier/internal/model"
	"InvestorClassifier/internal/report"
	"InvestorClassifier/internal/scoring"
)

// evaluate classifies p in-process, or through the configured server
// when remote is set.
func evaluate(ctx context.Context, p model.InvestorProfile, remote bool) (*model.ClassificationResult, error) {
	if !remote {
		res := scoring.Classify(p)
		metrics.ObserveClassification("cli", string(res.Profile), res.Score)
		log.Debug("classified locally", zap.String("profile", string(res.Profile)), zap.Float64("score", res.Score))
		return &res, nil
	}

	c, err := client.New(cfg.Client, log)
	if err != nil {
		return nil, err
	}
	if err := c.Health(ctx); err != nil {
		return nil, eris.Wrapf(err, "backend %s is not reachable", cfg.Client.BaseURL)
	}
	res, err := c.Classify(ctx, p)
	if err != nil {
		return nil, eris.Wrap(err, "remote classify")
	}
	log.Debug("classified remotely",
		zap.String("backend", cfg.Client.BaseURL),
		zap.String("profile", string(res.Profile)),
		zap.Float64("score", res.Score),
	)
	return res, nil
}

func printResult(w io.Writer, res *model.ClassificationResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(res), "encode result")
	}
	_, err := fmt.Fprint(w, report.FormatResult(res))
	return err
}
