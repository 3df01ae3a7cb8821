package shared_test

import (
	"errors"
	"testing"

	"todoapi/shared"
	"todoapi/shared/failure"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "single part", parts: []string{"todo"}, expected: "todo"},
		{name: "multiple parts", parts: []string{"todo", "list"}, expected: "todo:list"},
		{name: "empty parts are skipped", parts: []string{"limiter", "", "127.0.0.1"}, expected: "limiter:127.0.0.1"},
		{name: "no parts", parts: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.BuildCacheKey(tt.parts...); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "valid id", input: "1", expected: 1},
		{name: "large id", input: "9007199254740993", expected: 9007199254740993},
		{name: "zero", input: "0", expected: 0},
		{name: "negative", input: "-4", expected: -4},
		{name: "out of range", input: "9223372036854775808", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ParseID(tt.input)

			if tt.wantErr {
				if !errors.Is(err, failure.InvalidIDParam) {
					t.Errorf("expected InvalidIDParam, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(7, "id", "todos")

	where, args := group.GetWhereClause()

	if where != "(todos.id = :id)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["id"] != int64(7) {
		t.Errorf("expected id arg 7, got %v", args["id"])
	}
}
