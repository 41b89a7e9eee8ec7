package options

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/runner/get"
)

func TestParseID(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    int
		wantErr bool
	}{
		"zero":     {args: []string{"0"}, want: 0},
		"padded":   {args: []string{" 12 "}, want: 12},
		"missing":  {args: nil, wantErr: true},
		"too many": {args: []string{"1", "2"}, wantErr: true},
		"word":     {args: []string{"milk"}, wantErr: true},
		"negative": {args: []string{"-1"}, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &IDOptions{}
			err := o.ParseID(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%v): %v", tc.args, err)
			}
			if o.ID != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, o.ID)
			}
		})
	}
}

func TestListFilter(t *testing.T) {
	o := &ListOptions{Done: true}
	f, err := o.Filter()
	if err != nil || f != get.Done {
		t.Fatalf("expected done filter, got %v, %v", f, err)
	}

	o = &ListOptions{Done: true, Pending: true}
	if _, err := o.Filter(); err == nil {
		t.Fatalf("expected error for exclusive flags")
	}

	o = &ListOptions{}
	if f, _ := o.Filter(); f != get.All {
		t.Fatalf("expected all, got %v", f)
	}
}

func TestEditChangesOnlySetFlags(t *testing.T) {
	o := &EditOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddEditArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--note", "", "--daily=false"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	e := o.Changes(cmd)
	if e.Title != nil {
		t.Fatalf("title should be untouched, got %q", *e.Title)
	}
	if e.Note == nil || *e.Note != "" {
		t.Fatalf("expected note to be cleared, got %v", e.Note)
	}
	if e.IsDaily == nil || *e.IsDaily {
		t.Fatalf("expected daily=false, got %v", e.IsDaily)
	}
}
