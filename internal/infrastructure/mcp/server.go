// Package mcp exposes the assessment engine to MCP clients over stdio,
// HTTP or websocket transports.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/heuristiq/strategist/internal/infrastructure/wiring"
	"github.com/heuristiq/strategist/pkg/application"
	"github.com/heuristiq/strategist/pkg/domain/assessment"
	"github.com/heuristiq/strategist/pkg/report"
	"github.com/heuristiq/strategist/pkg/storage"
)

type Server struct {
	mcpServer     *mcp.Server
	repo          *storage.FilesystemRepository
	intakeSvc     *application.IntakeService
	assessmentSvc *application.AssessmentService
	auditSvc      *application.AuditService
	usageSvc      *application.UsageService
	root          string
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients.
// Internal details are omitted, only the friendly message is returned.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

func NewServer(root string) (*Server, error) {
	services, err := wiring.BuildAppServices(root)
	if err != nil {
		// Provider fallback is non-fatal; assessments degrade to
		// template questions.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	info := mcp.ServerInfo{
		Name:    "strategist",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Strategist MCP Server"),
			mcp.WithDescription("Strategist exposes requirement classification, coverage analysis, and clarifying questions to MCP clients."),
			mcp.WithWebsiteURL("https://github.com/heuristiq/strategist"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Import requirement documents, run assessments, then read coverage gaps and clarifying questions."),
		),
		repo:          services.Workspace.Repo,
		intakeSvc:     services.Intake,
		assessmentSvc: services.Assessment,
		auditSvc:      services.Audit,
		usageSvc:      services.Usage,
		root:          root,
	}

	s.registerTools()
	s.registerSchemaResource()
	return s, nil
}

type ImportArgs struct {
	Path string `json:"path" jsonschema:"description=Path to a markdown or YAML requirement document, or a directory to analyze"`
	Kind string `json:"kind,omitempty" jsonschema:"description=Document kind: stories, specs, architecture or auto (default)"`
}

type QuestionsArgs struct {
	Category string `json:"category,omitempty" jsonschema:"description=Limit questions to one category (structure, function, data, interfaces, platform, operations, time)"`
}

type CoverageArgs struct {
	Uncovered FlexBool `json:"uncovered,omitempty" jsonschema:"description=List uncovered subcategories per category"`
}

type ExportArgs struct {
	Format string `json:"format" jsonschema:"description=Export format: markdown or gherkin"`
}

type RunsArgs struct {
	Limit FlexInt `json:"limit,omitempty" jsonschema:"description=Limit the number of runs returned (most recent first)"`
}

func (s *Server) registerTools() {
	// Tool: strategist_init
	s.mcpServer.Tool("strategist_init").
		Description("Initialize a strategist workspace in the current directory").
		Handler(s.handleInit)

	// Tool: strategist_import_docs
	s.mcpServer.Tool("strategist_import_docs").
		Description("Import requirement documents (user stories, functional specs, architecture) from a file or directory").
		Handler(s.handleImportDocs)

	// Tool: strategist_assess
	s.mcpServer.Tool("strategist_assess").
		Description("Run a full assessment over the imported documents: classification, coverage scoring and clarifying questions").
		Handler(s.handleAssess)

	// Tool: strategist_get_assessment
	s.mcpServer.Tool("strategist_get_assessment").
		Description("Retrieve the latest persisted assessment").
		Handler(s.handleGetAssessment)

	// Tool: strategist_get_coverage
	s.mcpServer.Tool("strategist_get_coverage").
		Description("Get the coverage summary per category with optional uncovered subcategory lists").
		Handler(s.handleGetCoverage)

	// Tool: strategist_get_questions
	s.mcpServer.Tool("strategist_get_questions").
		Description("Get the open clarifying questions, optionally filtered to one category").
		Handler(s.handleGetQuestions)

	// Tool: strategist_enrich_questions
	s.mcpServer.Tool("strategist_enrich_questions").
		Description("Re-synthesize clarifying questions with AI enrichment, optionally for one category").
		Handler(s.handleEnrichQuestions)

	// Tool: strategist_status
	s.mcpServer.Tool("strategist_status").
		Description("Get a high-level summary of the workspace status").
		Handler(s.handleStatus)

	// Tool: strategist_export
	s.mcpServer.Tool("strategist_export").
		Description("Export the latest assessment as markdown or Gherkin feature skeletons").
		Handler(s.handleExport)

	// Tool: strategist_get_runs
	s.mcpServer.Tool("strategist_get_runs").
		Description("Get the assessment run history").
		Handler(s.handleGetRuns)

	// Tool: strategist_get_usage
	s.mcpServer.Tool("strategist_get_usage").
		Description("Retrieve workspace usage and AI token statistics").
		Handler(s.handleGetUsage)

	// Tool: strategist_audit_verify
	s.mcpServer.Tool("strategist_audit_verify").
		Description("Verify the integrity of the hash-chained audit trail").
		Handler(s.handleAuditVerify)
}

func (s *Server) handleInit(ctx context.Context, args struct{}) (string, error) {
	if err := s.repo.Initialize(); err != nil {
		return "", mcpErr("Failed to initialize workspace. Check directory permissions.")
	}
	return "Workspace initialized. Import requirement documents next.", nil
}

func (s *Server) handleImportDocs(ctx context.Context, args ImportArgs) (any, error) {
	if args.Path == "" {
		return nil, mcpErr("A path to a document or directory is required.")
	}

	switch strings.ToLower(args.Kind) {
	case "stories":
		stories, err := s.intakeSvc.ImportStories(args.Path)
		if err != nil {
			return nil, mcpErr("Failed to import stories. Ensure the file contains user story stanzas or YAML.")
		}
		return fmt.Sprintf("Imported %d user stories.", len(stories)), nil
	case "specs":
		specs, err := s.intakeSvc.ImportSpecs(args.Path)
		if err != nil {
			return nil, mcpErr("Failed to import specs. Ensure the file contains a specification with requirements.")
		}
		return fmt.Sprintf("Imported %d specifications.", len(specs)), nil
	case "architecture":
		arch, err := s.intakeSvc.ImportArchitecture(args.Path)
		if err != nil {
			return nil, mcpErr("Failed to import architecture. Ensure the file lists components or interfaces.")
		}
		return fmt.Sprintf("Imported architecture with %d components.", len(arch.Components)), nil
	case "", "auto":
		set, err := s.intakeSvc.AnalyzeDirectory(args.Path)
		if err != nil {
			return nil, mcpErr("Failed to analyze directory. Ensure it contains markdown requirement documents.")
		}
		return fmt.Sprintf("Imported %d stories, %d specs, architecture: %v.",
			len(set.Stories), len(set.Specs), set.Architecture != nil), nil
	default:
		return nil, mcpErr("Unknown document kind. Use stories, specs, architecture or auto.")
	}
}

func (s *Server) handleAssess(ctx context.Context, args struct{}) (any, error) {
	result, err := s.assessmentSvc.Assess(ctx)
	if err != nil {
		return nil, mcpErr("Assessment failed. Ensure documents are imported and valid.")
	}
	return map[string]any{
		"overall_coverage": result.OverallCoverage,
		"primary_theme":    result.PrimaryTheme,
		"opportunities":    result.TotalOpportunities(),
		"open_questions":   result.OpenQuestionCount(),
	}, nil
}

func (s *Server) handleGetAssessment(ctx context.Context, args struct{}) (any, error) {
	a, err := s.assessmentSvc.Latest()
	if err != nil {
		return nil, mcpErr("No assessment found. Run strategist_assess first.")
	}
	return a, nil
}

func (s *Server) handleGetCoverage(ctx context.Context, args CoverageArgs) (any, error) {
	a, err := s.assessmentSvc.Latest()
	if err != nil {
		return nil, mcpErr("No assessment found. Run strategist_assess first.")
	}

	type categoryCoverage struct {
		Category  string   `json:"category"`
		Percent   int      `json:"percent"`
		TestCount int      `json:"test_count"`
		Uncovered []string `json:"uncovered,omitempty"`
	}
	type coverageResp struct {
		Overall    int                `json:"overall"`
		Categories []categoryCoverage `json:"categories"`
	}

	resp := coverageResp{Overall: a.OverallCoverage}
	for _, cat := range assessment.Categories() {
		ca, ok := a.Categories[cat]
		if !ok {
			continue
		}
		cc := categoryCoverage{
			Category:  string(cat),
			Percent:   ca.Coverage.CoveragePercent,
			TestCount: ca.Coverage.TestCount,
		}
		if bool(args.Uncovered) {
			for _, sub := range ca.Coverage.UncoveredSubareas {
				cc.Uncovered = append(cc.Uncovered, string(sub))
			}
		}
		resp.Categories = append(resp.Categories, cc)
	}
	return resp, nil
}

func (s *Server) handleGetQuestions(ctx context.Context, args QuestionsArgs) (any, error) {
	a, err := s.assessmentSvc.Latest()
	if err != nil {
		return nil, mcpErr("No assessment found. Run strategist_assess first.")
	}

	filter := assessment.Category(strings.ToLower(args.Category))
	if args.Category != "" && !filter.IsValid() {
		return nil, mcpErr("Unknown category. Use structure, function, data, interfaces, platform, operations or time.")
	}

	var out []assessment.ClarifyingQuestion
	for _, cat := range assessment.Categories() {
		if args.Category != "" && cat != filter {
			continue
		}
		ca, ok := a.Categories[cat]
		if !ok {
			continue
		}
		for _, q := range ca.Questions {
			if len(q.Questions) > 0 {
				out = append(out, q)
			}
		}
	}
	if len(out) == 0 {
		return "No open questions. Coverage looks healthy.", nil
	}
	return out, nil
}

func (s *Server) handleEnrichQuestions(ctx context.Context, args QuestionsArgs) (any, error) {
	enriched, err := s.assessmentSvc.EnrichQuestions(ctx, assessment.Category(strings.ToLower(args.Category)))
	if err != nil {
		return nil, mcpErr("Enrichment failed. Check that AI is allowed by policy and an assessment exists.")
	}
	if len(enriched) == 0 {
		return "No questions to enrich. Coverage looks healthy.", nil
	}
	return enriched, nil
}

func (s *Server) handleStatus(ctx context.Context, args struct{}) (any, error) {
	set, err := s.intakeSvc.LoadDocumentSet()
	if err != nil {
		return nil, mcpErr("Failed to read workspace. Ensure it is initialized.")
	}

	type statusResp struct {
		Initialized     bool   `json:"initialized"`
		Stories         int    `json:"stories"`
		Specs           int    `json:"specs"`
		HasArchitecture bool   `json:"has_architecture"`
		HasAssessment   bool   `json:"has_assessment"`
		OverallCoverage int    `json:"overall_coverage,omitempty"`
		PrimaryTheme    string `json:"primary_theme,omitempty"`
		DocumentsStale  bool   `json:"documents_stale,omitempty"`
	}

	resp := statusResp{
		Initialized:     s.repo.IsInitialized(),
		Stories:         len(set.Stories),
		Specs:           len(set.Specs),
		HasArchitecture: set.Architecture != nil,
	}
	if a, err := s.assessmentSvc.Latest(); err == nil {
		resp.HasAssessment = true
		resp.OverallCoverage = a.OverallCoverage
		resp.PrimaryTheme = a.PrimaryTheme
		resp.DocumentsStale = a.DocumentHash != set.Hash()
	}
	return resp, nil
}

func (s *Server) handleExport(ctx context.Context, args ExportArgs) (string, error) {
	a, err := s.assessmentSvc.Latest()
	if err != nil {
		return "", mcpErr("No assessment found. Run strategist_assess first.")
	}

	switch strings.ToLower(args.Format) {
	case "markdown", "":
		return report.RenderMarkdown(a), nil
	case "gherkin":
		return report.RenderGherkin(a), nil
	default:
		return "", mcpErr("Unknown export format. Use markdown or gherkin.")
	}
}

func (s *Server) handleGetRuns(ctx context.Context, args RunsArgs) (any, error) {
	runs, err := s.assessmentSvc.History()
	if err != nil {
		return nil, mcpErr("Failed to load run history.")
	}
	if limit := int(args.Limit); limit > 0 && len(runs) > limit {
		runs = runs[len(runs)-limit:]
	}
	return runs, nil
}

func (s *Server) handleGetUsage(ctx context.Context, args struct{}) (any, error) {
	stats, err := s.usageSvc.GetUsage()
	if err != nil {
		return nil, mcpErr("Failed to load usage statistics.")
	}
	return stats, nil
}

func (s *Server) handleAuditVerify(ctx context.Context, args struct{}) (any, error) {
	violations, err := s.auditSvc.VerifyIntegrity()
	if err != nil {
		return nil, mcpErr("Failed to verify audit trail.")
	}
	if len(violations) == 0 {
		return "Audit trail intact.", nil
	}
	return violations, nil
}

func (s *Server) Start() error {
	return s.StartStdio()
}

func (s *Server) StartStdio() error {
	return s.ServeStdio(context.Background())
}

func (s *Server) StartHTTP(addr string) error {
	return s.ServeHTTP(context.Background(), addr)
}

func (s *Server) StartWebSocket(addr string) error {
	return s.ServeWebSocket(context.Background(), addr)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}

func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	return mcp.ServeWebSocket(ctx, s.mcpServer, addr)
}

// FlexBool accepts both boolean and string ("true"/"false") JSON values.
// MCP clients sometimes send string values for boolean fields.
type FlexBool bool

func (fb *FlexBool) UnmarshalJSON(data []byte) error {
	// Try bool first
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*fb = FlexBool(b)
		return nil
	}
	// Try string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*fb = FlexBool(s == "true" || s == "1" || s == "yes")
		return nil
	}
	return fmt.Errorf("expected boolean or string, got %s", string(data))
}

// FlexInt accepts both integer and string JSON values.
type FlexInt int

func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*fi = FlexInt(i)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
			*fi = FlexInt(n)
			return nil
		}
	}
	return fmt.Errorf("expected integer or string, got %s", string(data))
}
