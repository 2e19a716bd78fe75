package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"docverify/internal/config"
	"docverify/internal/dataprocessing"
	"docverify/internal/exporter"
	"docverify/internal/extractor"
	"docverify/internal/files"
	"docverify/internal/infrastructure"
	"docverify/internal/normalizer"
	"docverify/internal/reconcile"
	"docverify/internal/validation"
	"docverify/pkg/contracts"
	"docverify/pkg/contracts/domain"
)

func main() {
	master := flag.String("master", "", "master workbook path, or a directory holding exactly one workbook (defaults to data/documents)")
	docsDir := flag.String("docs", "", "directory containing PDF/DOCX documents to compare (defaults to data/documents)")
	out := flag.String("out", "comparison.csv", "row comparison CSV (relative paths land in data/reports)")
	headerOut := flag.String("header-out", "header_fields.csv", "header-field CSV (relative paths land in data/reports)")
	summary := flag.String("summary", "", "also write a printable plain-text summary to this path")
	sheet := flag.String("sheet", "", "master sheet name (defaults to the first sheet)")
	policy := flag.String("policy", "exact", "matching policy: exact | fuzzy")
	threshold := flag.Int("threshold", domain.DefaultThreshold, "fuzzy similarity floor, 0-100")
	productThreshold := flag.Int("product-threshold", 0, "fuzzy floor for product names only (0 inherits -threshold)")
	workers := flag.Int("workers", 0, "parallel document evaluations (0 = sequential)")
	headerFields := flag.Bool("header-fields", false, "also compare invoice-level header fields")
	positional := flag.Bool("positional", false, "use the fixed packing-list layout instead of header inference")
	rows := flag.String("rows", "", "positional layout row range, 1-based inclusive, e.g. 12:41")
	cols := flag.String("cols", "", "positional layout columns product,hs,qty, 1-based, e.g. 2,3,5")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *master == "" {
		*master = paths.DocumentsDir
	}
	if *docsDir == "" {
		*docsDir = paths.DocumentsDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("verifier.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "Starting document comparison",
		slog.String("master", *master),
		slog.String("documents_dir", *docsDir),
		slog.String("policy", *policy),
		slog.String("executable_dir", paths.ExecutableDir))

	opts := domain.RunOptions{
		Mode:             domain.MatchMode(*policy),
		Threshold:        *threshold,
		ProductThreshold: *productThreshold,
		Workers:          *workers,
	}
	if err := opts.Validate(); err != nil {
		logger.ErrorContext(ctx, "Invalid options", slog.String("error", err.Error()))
		os.Exit(1)
	}

	layout, err := parseLayout(*rows, *cols)
	if err != nil {
		logger.ErrorContext(ctx, "Invalid positional layout", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if layout == nil && *positional {
		l := dataprocessing.DefaultPositionalLayout
		layout = &l
	}

	validator := validation.NewFileValidator(logger)
	discovery := files.NewDiscovery(paths.ExecutableDir)

	masterPath := *master
	if info, err := os.Stat(masterPath); err == nil && info.IsDir() {
		workbooks, err := discovery.FindMasterWorkbooks(masterPath)
		if err != nil {
			logger.ErrorContext(ctx, "Master discovery failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		selected, err := files.SelectMaster(workbooks)
		if err != nil {
			logger.ErrorContext(ctx, "Master discovery failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		masterPath = selected.Path
	}
	if err := validator.ValidateMasterWorkbook(masterPath); err != nil {
		logger.ErrorContext(ctx, "Master validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if _, err := validator.ValidateInputDirectory(*docsDir); err != nil {
		logger.ErrorContext(ctx, "Documents directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fields, err := dataprocessing.ParseMaster(masterPath, dataprocessing.ParseOptions{
		Sheet:          *sheet,
		Layout:         layout,
		HeaderFields:   *headerFields,
		HeaderScanRows: cfg.Matching.HeaderScanRows,
		Logger:         logger,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to parse master workbook",
			slog.String("file", masterPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	inputs, err := loadDocuments(discovery, *docsDir, masterPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load documents", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(inputs) == 0 {
		logger.ErrorContext(ctx, "No comparison documents found", slog.String("directory", *docsDir))
		os.Exit(1)
	}

	norm := normalizer.New(cfg.Matching.Stopwords)
	engine := reconcile.NewEngine(logger, norm)
	docExtractor := extractor.New(logger, paths.CacheDir)

	docs, err := engine.ExtractDocuments(ctx, docExtractor, inputs)
	if err != nil {
		logger.ErrorContext(ctx, "Document extraction aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report, err := engine.Reconcile(ctx, fields, docs, opts)
	if err != nil {
		logger.ErrorContext(ctx, "Reconciliation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writer := exporter.NewCSVWriter(paths)
	reportExporter := exporter.NewReportExporter(writer, logger)
	if err := reportExporter.ExportCSV(report, *out); err != nil {
		logger.ErrorContext(ctx, "Failed to export comparison CSV", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := reportExporter.ExportHeaderFieldsCSV(report, *headerOut); err != nil {
		logger.ErrorContext(ctx, "Failed to export header-field CSV", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *summary != "" {
		summaryExporter := exporter.NewSummaryExporter(logger)
		if err := summaryExporter.WriteFile(*summary, report); err != nil {
			logger.ErrorContext(ctx, "Failed to write printable summary", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.InfoContext(ctx, "Comparison complete",
		slog.Int("total_rows", report.TotalRows),
		slog.Int("mismatched_rows", report.MismatchedRows),
		slog.Int("documents", len(report.Documents)))

	if report.MismatchedRows > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d rows mismatched, see %s\n",
			report.MismatchedRows, report.TotalRows, *out)
	}
}

// loadDocuments reads every discovered comparison document into memory. The
// master workbook is excluded if it happens to sit in the same directory.
func loadDocuments(discovery *files.Discovery, dir, masterPath string) ([]reconcile.DocumentInput, error) {
	found, err := discovery.FindComparisonDocuments(dir)
	if err != nil {
		return nil, err
	}

	manager := files.NewManager(dir)
	inputs := make([]reconcile.DocumentInput, 0, len(found))
	for _, f := range found {
		if f.Path == masterPath {
			continue
		}
		data, err := manager.ReadFile(f.Path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, reconcile.DocumentInput{
			Name:   f.Name,
			Data:   data,
			Format: extractor.DetectFormat(f.Name),
		})
	}
	return inputs, nil
}

// parseLayout turns the -rows/-cols flag pair into a positional layout.
// Both must be given together; both empty means header inference.
func parseLayout(rows, cols string) (*dataprocessing.PositionalLayout, error) {
	if rows == "" && cols == "" {
		return nil, nil
	}
	if rows == "" || cols == "" {
		return nil, fmt.Errorf("-rows and -cols must be given together")
	}

	rowParts := strings.SplitN(rows, ":", 2)
	if len(rowParts) != 2 {
		return nil, fmt.Errorf("invalid -rows %q, want START:END", rows)
	}
	start, err := strconv.Atoi(strings.TrimSpace(rowParts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid start row %q", rowParts[0])
	}
	end, err := strconv.Atoi(strings.TrimSpace(rowParts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid end row %q", rowParts[1])
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid row range %d:%d", start, end)
	}

	colParts := strings.Split(cols, ",")
	if len(colParts) != 3 {
		return nil, fmt.Errorf("invalid -cols %q, want PRODUCT,HS,QTY", cols)
	}
	idx := make([]int, 3)
	for i, part := range colParts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid column index %q", part)
		}
		idx[i] = n
	}

	return &dataprocessing.PositionalLayout{
		StartRow:    start,
		EndRow:      end,
		ProductCol:  idx[0],
		HSCodeCol:   idx[1],
		QuantityCol: idx[2],
	}, nil
}
