// poctl drives the extraction pipeline against a running pouploadd server:
// upload, OCR, field extraction, optional review edits, and confirmation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/poflow/po-upload/constants"
	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/entity"
	"github.com/poflow/po-upload/internal/objstore"
	"github.com/poflow/po-upload/internal/pipeline"
	"github.com/poflow/po-upload/internal/review"
)

func main() {
	_ = godotenv.Load()

	var (
		serverURL = flag.String("server", "http://localhost:8080", "pouploadd base URL")
		filePath  = flag.String("file", "", "document to digitize (pdf/jpg/jpeg/png)")
		token     = flag.String("token", "", "session token for guarded servers")
		confirm   = flag.Bool("confirm", false, "confirm and persist the extracted record")
		customer  = flag.String("customer", "", "override customer name before confirming")
		poNumber  = flag.String("po-number", "", "override PO number before confirming")
		poDate    = flag.String("po-date", "", "override PO date (yyyy-mm-dd) before confirming")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: poctl -file <document> [-confirm] [-server URL]")
		os.Exit(2)
	}
	content, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Error("reading file", "path", *filePath, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	client := pipeline.NewClient(*serverURL, 0, logger)
	if *token != "" {
		client.SetSessionToken(*token)
	}

	var store pipeline.ObjectStore
	if cfg.Storage.BaseURL != "" {
		store = objstore.NewClient(objstore.Config{
			BaseURL: cfg.Storage.BaseURL,
			APIKey:  cfg.Storage.APIKey,
			Bucket:  cfg.Storage.Bucket,
			Timeout: cfg.Storage.Timeout,
		}, logger)
	}

	ctx := context.Background()
	orch := pipeline.NewOrchestrator(client, store, logger)

	filename := filepath.Base(*filePath)
	if err := orch.Select(filename, contentTypeFor(filename), content); err != nil {
		logger.Error("selecting file", "error", err)
		os.Exit(1)
	}
	if err := orch.Submit(ctx); err != nil {
		logger.Error("pipeline failed", "stage", orch.Job().Stage, "error", err)
		os.Exit(1)
	}
	if err := orch.RunExtraction(ctx); err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	job := orch.Job()
	printJSON(job.Record)

	if !*confirm {
		return
	}

	form := review.NewForm(*job.Record)
	if *customer != "" {
		form.SetCustomerName(*customer)
	}
	if *poNumber != "" {
		form.SetPONumber(*poNumber)
	}
	if *poDate != "" {
		form.SetPODate(*poDate)
	}
	record := form.Confirm()
	if err := orch.Confirm(record); err != nil {
		logger.Error("confirming record", "error", err)
		os.Exit(1)
	}

	var docID *entity.Document
	if job.StoredKey != "" {
		docID, err = client.RegisterDocument(ctx, &entity.Document{
			ObjectKey:   job.StoredKey,
			Filename:    job.Filename,
			FileSize:    len(job.Content),
			ContentType: job.ContentType,
			PublicURL:   job.StoredURL,
		})
		if err != nil {
			logger.Error("registering document", "error", err)
			os.Exit(1)
		}
	}

	saved, err := client.SavePurchaseOrder(ctx, *record, documentID(docID))
	if err != nil {
		logger.Error("saving purchase order", "error", err)
		os.Exit(1)
	}
	logger.Info("purchase order saved", "id", saved.ID, "po_number", saved.PONumber)
	printJSON(saved)
}

func documentID(doc *entity.Document) *uuid.UUID {
	if doc == nil {
		return nil
	}
	return &doc.ID
}

func contentTypeFor(filename string) string {
	switch constants.NormalizeExt(filepath.Ext(filename)) {
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
