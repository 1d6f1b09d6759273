package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLeadDefaultsToExample(t *testing.T) {
	lead, err := readLead("", strings.NewReader("ignored"))
	if err != nil {
		t.Fatal(err)
	}
	if lead.FullName != "Азат Азатов" || lead.Direction != "visa" {
		t.Errorf("unexpected example lead %#v", lead)
	}
	if _, ok := lead.Extra[KeyTravelDate]; !ok {
		t.Error("example lead should carry an empty travel date")
	}
}

func TestReadLeadFromStdin(t *testing.T) {
	stdin := strings.NewReader(`{"full_name":"Мерген","phone":"+99361000000","direction":"tickets","Город прибытия":"Стамбул"}`)
	lead, err := readLead("-", stdin)
	if err != nil {
		t.Fatal(err)
	}
	if lead.FullName != "Мерген" || lead.Direction != "tickets" {
		t.Errorf("unexpected lead %#v", lead)
	}
	if lead.Extra[KeyArrivalCity] != "Стамбул" {
		t.Errorf("arrival city lost: %v", lead.Extra)
	}
}

func TestReadLeadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lead.json")
	content := `{"full_name":"Азат Азатов","phone":"+99365123456","email":"","direction":"umrah"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	lead, err := readLead(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if lead.Direction != "umrah" || lead.Extra != nil {
		t.Errorf("unexpected lead %#v", lead)
	}
}

func TestReadLeadErrors(t *testing.T) {
	if _, err := readLead(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Error("expected error for missing file")
	}
	for _, body := range []string{`[]`, `{"full_name": 1}`, `not json`} {
		if _, err := readLead("-", strings.NewReader(body)); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}
