//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const countriesJSON = `[
  {"name":{"common":"France"},"capital":["Paris"],"region":"Europe","languages":{"fra":"French"},"population":67391582,"area":551695,"flags":{"svg":"https://flagcdn.com/fr.svg"},"tld":[".fr"]},
  {"name":{"common":"Germany"},"capital":["Berlin"],"region":"Europe","languages":{"deu":"German"},"population":83240525,"area":357114,"flags":{"svg":"https://flagcdn.com/de.svg"},"tld":[".de"]},
  {"name":{"common":"Japan"},"capital":["Tokyo"],"region":"Asia","languages":{"jpn":"Japanese"},"population":125836021,"area":377930,"flags":{"svg":"https://flagcdn.com/jp.svg"},"tld":[".jp"]},
  {"name":{"common":"Antarctica"},"region":"Antarctic","population":1000,"area":14000000,"flags":{"svg":"https://flagcdn.com/aq.svg"}}
]`

// startDatasetServer serves the fixture dataset with the given status
func startDatasetServer(t *testing.T, status int) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(countriesJSON))
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// startWithDataset launches the app against a fixture server answering with status
func startWithDataset(t *testing.T, status int) *driver {
	t.Helper()
	d := newDriver(t)
	if err := d.start("--source-url", startDatasetServer(t, status), "--timeout", "5"); err != nil {
		t.Fatalf("start app: %v", err)
	}
	return d
}
