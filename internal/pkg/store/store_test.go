package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/tendermarkup/internal/domain"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
)

func TestWrapErr(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{"No rows", pgx.ErrNoRows, constants.ErrDBNotFound},
		{"Wrapped no rows", fmt.Errorf("getx: %w", pgx.ErrNoRows), constants.ErrDBNotFound},
		{"Other error", other, other},
		{"Nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapErr(tt.input); got != tt.expected {
				t.Errorf("wrapErr(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestActivateMarkupConfigurationQueries(t *testing.T) {
	configID, tenderID := uuid.New(), uuid.New()
	deactivate, activate := activateMarkupConfigurationQueries(configID, tenderID)

	sql, args, err := deactivate.ToSql()
	if err != nil {
		t.Fatalf("deactivate.ToSql() error = %v", err)
	}
	expectedSQL := "UPDATE markup_configurations SET is_active = $1 WHERE (tender_id = $2 AND id <> $3 AND is_active = $4)"
	if sql != expectedSQL {
		t.Errorf("deactivate sql = %q, expected %q", sql, expectedSQL)
	}
	if !reflect.DeepEqual(args, []interface{}{false, tenderID, configID, true}) {
		t.Errorf("deactivate args = %v", args)
	}

	sql, args, err = activate.ToSql()
	if err != nil {
		t.Fatalf("activate.ToSql() error = %v", err)
	}
	expectedSQL = "UPDATE markup_configurations SET is_active = $1 WHERE (id = $2 AND tender_id = $3)"
	if sql != expectedSQL {
		t.Errorf("activate sql = %q, expected %q", sql, expectedSQL)
	}
	if !reflect.DeepEqual(args, []interface{}{true, configID, tenderID}) {
		t.Errorf("activate args = %v", args)
	}
}

func TestCreateMarkupConfigurationQuery(t *testing.T) {
	tenderID := uuid.New()
	cfg := &domain.MarkupConfiguration{
		TenderID:         tenderID,
		Name:             "base",
		MarkupParameters: domain.MarkupParameters{ProfitOwnForces: domain.Percent(12)},
	}

	sql, args, err := createMarkupConfigurationQuery(cfg).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}

	if !strings.HasPrefix(sql, "INSERT INTO markup_configurations (id,tender_id,name,version,is_active,works_16_markup,") {
		t.Errorf("unexpected insert prefix: %s", sql)
	}
	if !strings.Contains(sql, "(select coalesce(max(version), 0) + 1 from markup_configurations where tender_id = $4)") {
		t.Errorf("expected version subquery, got %s", sql)
	}
	if !strings.HasSuffix(sql, "returning "+joinColumns(markupConfigurationColumns)) {
		t.Errorf("expected returning clause, got %s", sql)
	}
	if len(args) != 5+len(markupParameterColumns) {
		t.Fatalf("expected %d args, got %d", 5+len(markupParameterColumns), len(args))
	}
	if args[0] == uuid.Nil {
		t.Error("expected generated id")
	}
	if args[1] != tenderID || args[3] != tenderID {
		t.Errorf("expected tender id in args, got %v", args[:4])
	}
	if args[4] != false {
		t.Errorf("new configuration must be inactive, got %v", args[4])
	}
}

func TestCreateMarkupTemplateQueryKeepsID(t *testing.T) {
	id := uuid.New()
	sql, args, err := createMarkupTemplateQuery(&domain.MarkupTemplate{ID: id, Name: "Стандарт", IsDefault: true}).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	if !strings.HasPrefix(sql, "INSERT INTO markup_templates (id,name,description,is_default,") {
		t.Errorf("unexpected sql: %s", sql)
	}
	if args[0] != id || args[3] != true {
		t.Errorf("unexpected args: %v", args[:4])
	}
}

func TestListBOQItemsQuery(t *testing.T) {
	tenderID := uuid.New()
	sql, args, err := listBOQItemsQuery(tenderID).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	expected := "SELECT " + joinColumns(boqItemColumns) + " FROM boq_items WHERE tender_id = $1 ORDER BY position_id, id"
	if sql != expected {
		t.Errorf("sql = %q, expected %q", sql, expected)
	}
	if len(args) != 1 || args[0] != tenderID {
		t.Errorf("unexpected args %v", args)
	}
}

func TestUpdateTenderCommercialTotalQuery(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	sql, args, err := updateTenderCommercialTotalQuery(id, 278765, at).ToSql()
	if err != nil {
		t.Fatalf("ToSql() error = %v", err)
	}
	expected := "UPDATE tenders SET commercial_total = $1, commercial_total_updated_at = $2, updated_at = now() WHERE id = $3"
	if sql != expected {
		t.Errorf("sql = %q, expected %q", sql, expected)
	}
	if !reflect.DeepEqual(args, []interface{}{278765.0, at, id}) {
		t.Errorf("unexpected args %v", args)
	}
}

// Rows are scanned by name, so every selected column needs a matching db tag.
func TestColumnsMatchStructTags(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		value   interface{}
	}{
		{"tender", tenderColumns, domain.Tender{}},
		{"boq item", boqItemColumns, domain.BOQItem{}},
		{"markup configuration", markupConfigurationColumns, domain.MarkupConfiguration{}},
		{"markup template", markupTemplateColumns, domain.MarkupTemplate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := dbTags(reflect.TypeOf(tt.value))
			if !reflect.DeepEqual(tags, tt.columns) {
				t.Errorf("db tags %v do not match columns %v", tags, tt.columns)
			}
		})
	}
}

func dbTags(typ reflect.Type) []string {
	var tags []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			tags = append(tags, dbTags(f.Type)...)
			continue
		}
		if tag := f.Tag.Get("db"); tag != "" && tag != "-" {
			tags = append(tags, tag)
		}
	}
	return tags
}
