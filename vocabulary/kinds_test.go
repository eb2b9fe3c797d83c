package vocabulary

import "testing"

func TestParseKindExpr(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    KindExpr
		wantErr bool
	}{
		{
			name: "plain string",
			expr: "string",
			want: KindExpr{Kind: KindString},
		},
		{
			name: "number multiple",
			expr: "number*",
			want: KindExpr{Kind: KindNumber, Multiple: true},
		},
		{
			name: "date",
			expr: "date",
			want: KindExpr{Kind: KindDate},
		},
		{
			name: "local ref",
			expr: "ref(Distribution)",
			want: KindExpr{Kind: KindReference, Ref: "Distribution"},
		},
		{
			name: "prefixed ref multiple",
			expr: "ref(dcat:Dataset)*",
			want: KindExpr{Kind: KindReference, Ref: "dcat:Dataset", Multiple: true},
		},
		{
			name: "surrounding whitespace",
			expr: "  ref( Agent ) ",
			want: KindExpr{Kind: KindReference, Ref: "Agent"},
		},
		{
			name:    "empty",
			expr:    "",
			wantErr: true,
		},
		{
			name:    "unknown kind",
			expr:    "boolean",
			wantErr: true,
		},
		{
			name:    "bare ref",
			expr:    "ref",
			wantErr: true,
		},
		{
			name:    "unterminated ref",
			expr:    "ref(Dataset",
			wantErr: true,
		},
		{
			name:    "empty ref target",
			expr:    "ref()",
			wantErr: true,
		},
		{
			name:    "double namespace",
			expr:    "ref(a:b:c)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKindExpr(tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKindExpr(%q) = %+v, want error", tt.expr, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKindExpr(%q) error: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseKindExpr(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestKindExprString(t *testing.T) {
	exprs := []string{"string", "number*", "date", "ref(Distribution)", "ref(dcat:Dataset)*"}
	for _, expr := range exprs {
		parsed, err := ParseKindExpr(expr)
		if err != nil {
			t.Fatalf("ParseKindExpr(%q) error: %v", expr, err)
		}
		if got := parsed.String(); got != expr {
			t.Errorf("String() = %q, want %q", got, expr)
		}
	}
}

func TestValueKindIsValid(t *testing.T) {
	valid := []ValueKind{KindString, KindNumber, KindDate, KindReference}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", k)
		}
	}
	if ValueKind("bool").IsValid() {
		t.Error("IsValid(bool) = true, want false")
	}
	if ValueKind("").IsValid() {
		t.Error("IsValid(empty) = true, want false")
	}
}

func TestNodeKindIsValid(t *testing.T) {
	valid := []NodeKind{NodeKindObject, NodeKindObjectType, NodeKindVariable, NodeKindMethod}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", k)
		}
	}
	if NodeKind("View").IsValid() {
		t.Error("IsValid(View) = true, want false")
	}
}
