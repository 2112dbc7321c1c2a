package options

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/daymark/pkg/app"
)

func TestParseDays(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    []int
		wantErr bool
	}{
		"single":      {args: []string{"3"}, want: []int{3}},
		"range":       {args: []string{"10-13"}, want: []int{10, 11, 12, 13}},
		"backwards":   {args: []string{"5-3"}, want: []int{5, 4, 3}},
		"list":        {args: []string{"1,4,9-10"}, want: []int{1, 4, 9, 10}},
		"many args":   {args: []string{"1", "2,3"}, want: []int{1, 2, 3}},
		"empty parts": {args: []string{"1,,2"}, want: []int{1, 2}},
		"nothing":     {args: []string{""}, wantErr: true},
		"zero":        {args: []string{"0"}, wantErr: true},
		"negative":    {args: []string{"-3"}, wantErr: true},
		"word":        {args: []string{"monday"}, wantErr: true},
		"open range":  {args: []string{"3-"}, wantErr: true},
		"past month":  {args: []string{"1-5000000"}, wantErr: true},
		"day 32":      {args: []string{"32"}, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDays(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetOn(t *testing.T) {
	now := time.Date(2022, time.June, 14, 0, 0, 0, 0, time.Local)
	tests := map[string]struct {
		on      string
		want    app.Cursor
		wantErr bool
	}{
		"default":    {on: "", want: app.Cursor{Year: 2022, Month: 6}},
		"year month": {on: "2021-12", want: app.Cursor{Year: 2021, Month: 12}},
		"month":      {on: "2", want: app.Cursor{Year: 2022, Month: 2}},
		"bad month":  {on: "13", wantErr: true},
		"garbage":    {on: "june", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &OnOptions{OnString: tc.on}
			got, err := o.GetOn(now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGetYear(t *testing.T) {
	now := time.Date(2022, time.June, 14, 0, 0, 0, 0, time.Local)
	if got := (&YearOptions{}).GetYear(now); got != 2022 {
		t.Fatalf("default year = %d", got)
	}
	if got := (&YearOptions{Year: 1999}).GetYear(now); got != 1999 {
		t.Fatalf("year = %d", got)
	}
}

func TestHandleError(t *testing.T) {
	buf := &bytes.Buffer{}
	o := &OutputOptions{Out: buf}
	boom := errors.New("boom")

	if err := o.HandleError(boom); err != boom {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output without --json")
	}

	o.JSON = true
	if err := o.HandleError(boom); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if got := buf.String(); got != "{\"error\":\"boom\"}\n" {
		t.Fatalf("got %q", got)
	}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("nil error: %v", err)
	}
}
