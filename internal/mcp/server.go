package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/auditkit/mcp-pdf-compliance/internal/compliance"
	"github.com/auditkit/mcp-pdf-compliance/internal/config"
	"github.com/auditkit/mcp-pdf-compliance/internal/descriptions"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *compliance.Service
	mcpServer *server.MCPServer
	logger    zerolog.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *compliance.Service, logger zerolog.Logger) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // Tool set is static
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
		logger:    logger,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers the six compliance analysis tools
func (s *Server) registerTools() {
	findSectionsTool := mcp.NewTool(
		"find_regulatory_sections",
		mcp.WithDescription(descriptions.FindRegulatorySectionsDescription),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("doc_type",
			mcp.Required(),
			mcp.Description("Document type: 10-K, SOX 404, 8-K, or Invoice"),
		),
	)
	s.mcpServer.AddTool(findSectionsTool, s.handleFindRegulatorySections)

	extractStatementsTool := mcp.NewTool(
		"extract_financial_statements",
		mcp.WithDescription(descriptions.ExtractFinancialStatementsDescription),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(extractStatementsTool, s.handleExtractFinancialStatements)

	validateMathTool := mcp.NewTool(
		"validate_financial_math",
		mcp.WithDescription(descriptions.ValidateFinancialMathDescription),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateMathTool, s.handleValidateFinancialMath)

	checkSignaturesTool := mcp.NewTool(
		"check_required_signatures",
		mcp.WithDescription(descriptions.CheckRequiredSignaturesDescription),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("doc_type",
			mcp.Required(),
			mcp.Description("Document type: 10-K, SOX 404, 8-K, or Invoice"),
		),
		mcp.WithNumber("invoice_amount",
			mcp.Description("Invoice amount in dollars (invoices only)"),
		),
	)
	s.mcpServer.AddTool(checkSignaturesTool, s.handleCheckRequiredSignatures)

	redFlagsTool := mcp.NewTool(
		"detect_compliance_red_flags",
		mcp.WithDescription(descriptions.DetectComplianceRedFlagsDescription),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(redFlagsTool, s.handleDetectComplianceRedFlags)

	comparativePeriodsTool := mcp.NewTool(
		"extract_comparative_periods",
		mcp.WithDescription(descriptions.ExtractComparativePeriodsDescription),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(comparativePeriodsTool, s.handleExtractComparativePeriods)
}

// Handler functions

func (s *Server) handleFindRegulatorySections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	docType, err := request.RequireString("doc_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.FindRegulatorySections(compliance.FindSectionsRequest{
		Path:    path,
		DocType: docType,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(result)
}

func (s *Server) handleExtractFinancialStatements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ExtractFinancialStatements(compliance.ExtractStatementsRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(result)
}

func (s *Server) handleValidateFinancialMath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateFinancialMath(compliance.ValidateMathRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(result)
}

func (s *Server) handleCheckRequiredSignatures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	docType, err := request.RequireString("doc_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := compliance.CheckSignaturesRequest{
		Path:    path,
		DocType: docType,
	}
	if amount, ok := request.GetArguments()["invoice_amount"].(float64); ok {
		req.InvoiceAmount = &amount
	}

	result, err := s.service.CheckRequiredSignatures(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(result)
}

func (s *Server) handleDetectComplianceRedFlags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.DetectComplianceRedFlags(compliance.DetectRedFlagsRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(result)
}

func (s *Server) handleExtractComparativePeriods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ExtractComparativePeriods(compliance.ExtractPeriodsRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(result)
}

// jsonResult renders a structured result as indented JSON tool output
func (s *Server) jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server over standard I/O
func (s *Server) runStdioMode(_ context.Context) error {
	s.logger.Debug().Str("mode", config.ModeStdio).Msg("starting PDF compliance MCP server")

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server over streamable HTTP
func (s *Server) runServerMode(_ context.Context) error {
	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	s.logger.Info().Str("address", s.config.Address()).Msg("starting PDF compliance MCP server")
	if err := httpServer.Start(s.config.Address()); err != nil {
		return fmt.Errorf("failed to serve http: %w", err)
	}
	return nil
}
