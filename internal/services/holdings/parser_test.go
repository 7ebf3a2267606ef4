package holdings

import (
	"sort"
	"strings"
	"testing"

	"github.com/bobmcallan/muskunits/internal/models"
)

func TestParseRecentBasic(t *testing.T) {
	text := strings.Join([]string{
		"Country\t2020-01\t2020-02",
		"Japan\t100\t110",
	}, "\n")

	data := ParseRecent(text)

	series, ok := data["Japan"]
	if !ok {
		t.Fatalf("expected Japan in parsed data, got countries: %v", keys(data))
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[0].Date != "2020-01" || series[0].Value != 100 {
		t.Errorf("first point = %+v, want {2020-01 100}", series[0])
	}
	if series[1].Date != "2020-02" || series[1].Value != 110 {
		t.Errorf("second point = %+v, want {2020-02 110}", series[1])
	}
}

func TestParseRecentRowsBeforeHeaderIgnored(t *testing.T) {
	text := strings.Join([]string{
		"France\t55\t66",
		"Country\t2021-03",
		"Japan\t100",
	}, "\n")

	data := ParseRecent(text)

	if _, ok := data["France"]; ok {
		t.Error("row preceding the header must be skipped, not parsed against an empty header")
	}
	if len(data["Japan"]) != 1 {
		t.Errorf("expected 1 Japan point, got %d", len(data["Japan"]))
	}
}

func TestParseRecentNonNumericCellSkipped(t *testing.T) {
	text := strings.Join([]string{
		"Country\t2020-01\t2020-02\t2020-03",
		"Japan\t100\tn.a.\t120",
	}, "\n")

	series := ParseRecent(text)["Japan"]

	if len(series) != 2 {
		t.Fatalf("expected the unparseable cell to be dropped, got %d points", len(series))
	}
	for _, p := range series {
		if p.Date == "2020-02" {
			t.Errorf("gap date recorded as a point: %+v", p)
		}
		if p.Value == 0 {
			t.Errorf("gap must not become a zero point: %+v", p)
		}
	}
}

func TestParseRecentShortRowParsesOverlappingCells(t *testing.T) {
	text := strings.Join([]string{
		"Country\t2020-01\t2020-02\t2020-03",
		"Japan\t100\t110",
	}, "\n")

	series := ParseRecent(text)["Japan"]

	if len(series) != 2 {
		t.Fatalf("row shorter than the header must yield only the overlapping cells, got %d points", len(series))
	}
	if series[0].Date != "2020-01" || series[1].Date != "2020-02" {
		t.Errorf("points = %+v, want dates 2020-01 and 2020-02", series)
	}
	for _, p := range series {
		if p.Date == "2020-03" {
			t.Errorf("date beyond the row's width recorded as a point: %+v", p)
		}
	}
}

func TestParseRecentSkipsMetaAndAggregateRows(t *testing.T) {
	text := strings.Join([]string{
		"Table 5: Holdings of securities",
		"Billions of dollars",
		"Country\t2020-01",
		"Grand Total\t9999",
		"All Other\t500",
		"Of Which: banks\t123",
		"Japan\t100",
		"Notes: see release",
	}, "\n")

	data := ParseRecent(text)

	if len(data) != 1 {
		t.Fatalf("expected only Japan, got %v", keys(data))
	}
}

func TestParseRecentCanonicalizesCountryNames(t *testing.T) {
	text := strings.Join([]string{
		"Country\t2020-01",
		"Korea, South\t75",
	}, "\n")

	data := ParseRecent(text)

	if _, ok := data["Korea, South"]; ok {
		t.Error("bureau spelling must collapse to the canonical name")
	}
	if len(data["Korea"]) != 1 {
		t.Fatalf("expected Korea series, got %v", keys(data))
	}
}

func TestParseRecentNoHeaderYieldsEmptyMapping(t *testing.T) {
	data := ParseRecent("Japan\t100\t110\nChina\t90")
	if len(data) != 0 {
		t.Errorf("headerless input must yield an empty mapping, got %v", keys(data))
	}
}

func TestParseHistoricalBasic(t *testing.T) {
	text := strings.Join([]string{
		"MAJOR FOREIGN HOLDERS OF TREASURY SECURITIES",
		"\tDec\tNov\tOct\tSep\tAug\tJul",
		"Country\t2010\t2010\t2010\t2010\t2010\t2010",
		"Japan\t882.3\t875.9\t873.6\t865.0\t836.6\t821.0",
		"\"China, Mainland\"\t1160.1\t------\t1175.3\t1151.9\t1136.8\t1115.1",
	}, "\n")

	data := ParseHistorical(text)

	japan := data["Japan"]
	if len(japan) != 6 {
		t.Fatalf("expected 6 Japan points, got %d", len(japan))
	}
	if japan[0].Date != "2010-12" || japan[0].Value != 882.3 {
		t.Errorf("first Japan point = %+v, want {2010-12 882.3}", japan[0])
	}

	china := data["China"]
	if len(china) != 5 {
		t.Fatalf("dash placeholder must be skipped, got %d China points", len(china))
	}
	for _, p := range china {
		if p.Date == "2010-11" {
			t.Errorf("placeholder cell recorded as a point: %+v", p)
		}
	}
}

func TestParseHistoricalHeaderResyncPerPage(t *testing.T) {
	text := strings.Join([]string{
		"\tDec\tNov\tOct\tSep\tAug\tJul",
		"Country\t2010\t2010\t2010\t2010\t2010\t2010",
		"Japan\t882.3\t875.9\t873.6\t865.0\t836.6\t821.0",
		"\tDec\tNov\tOct\tSep\tAug\tJul",
		"Country\t2008\t2008\t2008\t2008\t2008\t2008",
		"Japan\t626.0\t625.2\t629.9\t617.1\t610.0\t592.0",
	}, "\n")

	japan := ParseHistorical(text)["Japan"]

	if len(japan) != 12 {
		t.Fatalf("expected 12 points across both pages, got %d", len(japan))
	}

	dates := make(map[string]bool)
	for _, p := range japan {
		dates[p.Date] = true
	}
	for _, want := range []string{"2010-12", "2010-07", "2008-12", "2008-07"} {
		if !dates[want] {
			t.Errorf("missing point for %s after header resync", want)
		}
	}
}

func TestParseHistoricalSkipsSecurityTypeRows(t *testing.T) {
	text := strings.Join([]string{
		"\tDec\tNov\tOct\tSep\tAug\tJul",
		"Country\t2010\t2010\t2010\t2010\t2010\t2010",
		"Japan\t882.3\t875.9\t873.6\t865.0\t836.6\t821.0",
		"Of which: For. Official\t500\t500\t500\t500\t500\t500",
		"Treasury Bills\t100\t100\t100\t100\t100\t100",
		"T-Bonds & Notes\t400\t400\t400\t400\t400\t400",
		"Grand Total\t4373.8\t4343.1\t4316.5\t4261.1\t4204.9\t4116.1",
	}, "\n")

	data := ParseHistorical(text)

	if len(data) != 1 {
		t.Fatalf("expected only Japan, got %v", keys(data))
	}
}

func TestParseHistoricalNoHeaderYieldsEmptyMapping(t *testing.T) {
	data := ParseHistorical("Japan\t882.3\t875.9")
	if len(data) != 0 {
		t.Errorf("headerless input must yield an empty mapping, got %v", keys(data))
	}
}

func keys(m models.CountrySeries) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
