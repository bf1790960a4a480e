// Package pipeline orchestrates the full statement analysis flow: parse,
// classify, aggregate, report, advise and enrich with model insights. It is
// also the query entry point over a loaded session.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zxfpro/expenditure-analyse/internal/advisor"
	"github.com/zxfpro/expenditure-analyse/internal/analyzer"
	"github.com/zxfpro/expenditure-analyse/internal/classifier"
	"github.com/zxfpro/expenditure-analyse/internal/config"
	"github.com/zxfpro/expenditure-analyse/internal/insight"
	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"
	"github.com/zxfpro/expenditure-analyse/internal/parser"
	"github.com/zxfpro/expenditure-analyse/internal/parsererror"
	"github.com/zxfpro/expenditure-analyse/internal/query"
)

// Result bundles everything one analysis run produces.
type Result struct {
	Transactions []models.Transaction
	Analysis     models.AnalysisResult
	Report       string
	Advice       string
	Insights     insight.Insights
}

// Render composes the user-facing analysis text.
func (r *Result) Render() string {
	var b strings.Builder
	b.WriteString(r.Report)
	b.WriteString("\n--- 智能建议 ---\n")
	b.WriteString(r.Advice)
	b.WriteString("\n\n--- 智能分析 ---\n")
	b.WriteString(fmt.Sprintf("建议: %s\n", r.Insights.Advice))
	b.WriteString(fmt.Sprintf("预测: %s\n", r.Insights.Prediction))
	return b.String()
}

// Pipeline wires the analysis stages together. The parser decides the
// loading strategy; the generator supplies model insights and may be a stub.
type Pipeline struct {
	cfg       *config.Config
	parser    parser.Parser
	rules     models.RuleSet
	classify  classifier.Strategy
	generator insight.Generator
	resolver  *query.Resolver
	logger    logging.Logger
}

// New creates a pipeline. A nil classify strategy defaults to the bulk pass;
// a nil generator disables model calls and yields simulated insight
// placeholders.
func New(cfg *config.Config, p parser.Parser, rules models.RuleSet, classify classifier.Strategy, generator insight.Generator, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if classify == nil {
		classify = classifier.ApplyCategories
	}
	if generator == nil {
		generator = insight.StubGenerator{}
	}
	return &Pipeline{
		cfg:       cfg,
		parser:    p,
		rules:     rules,
		classify:  classify,
		generator: generator,
		resolver:  query.NewResolver(rules, logger),
		logger:    logger,
	}
}

// Resolver exposes the query resolver, mainly so tests can pin its clock.
func (p *Pipeline) Resolver() *query.Resolver {
	return p.resolver
}

// AnalyzeFile runs the full flow over one statement file and stores the
// outcome in the session. On any error the session is left untouched.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, session *Session) (*Result, error) {
	log := p.logger.WithField(logging.FieldFile, path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &parsererror.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("error accessing statement file: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening statement file: %w", err)
	}
	defer file.Close()

	txs, err := p.parser.Parse(file, p.cfg.Columns)
	if err != nil {
		return nil, err
	}
	log.WithField(logging.FieldCount, len(txs)).Info("Parsed statement file")

	p.classify(txs, p.rules)
	result := analyzer.Aggregate(txs)

	insights := p.generateInsights(ctx, result)

	out := &Result{
		Transactions: txs,
		Analysis:     result,
		Report:       analyzer.RenderReport(result),
		Advice:       advisor.Advise(result, p.cfg.Advice),
		Insights:     insights,
	}

	session.Set(txs, result)
	return out, nil
}

// generateInsights calls the model with the prepared payload. Failures
// degrade to the simulated placeholders rather than failing the analysis.
func (p *Pipeline) generateInsights(ctx context.Context, result models.AnalysisResult) insight.Insights {
	payload := insight.Prepare(result)
	resp, err := p.generator.Generate(ctx, payload)
	if err != nil {
		p.logger.WithError(err).Warn("Insight generation failed, using simulated insights")
		return insight.Process(nil)
	}
	return insight.Process(resp)
}

// Query answers a natural-language question against the session. Querying
// an unloaded session is a hard error (NotLoadedError); any other failure
// during resolution degrades to apologetic text instead, keeping the
// conversational surface total.
func (p *Pipeline) Query(text string, session *Session) (answer string, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WithField(logging.FieldQuery, text).
				Error(fmt.Sprintf("Query processing panicked: %v", r))
			answer = fmt.Sprintf("抱歉，处理您的查询时发生错误：%v", r)
			err = nil
		}
	}()

	txs, _, ok := session.Snapshot()
	if !ok {
		return "", &parsererror.NotLoadedError{}
	}
	return p.resolver.Answer(txs, text), nil
}
