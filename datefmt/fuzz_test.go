package datefmt

import "testing"

func FuzzClassify(f *testing.F) {
	seeds := []string{
		// Dates
		"03/10/1990",
		"12/25/1990",
		"25/12/1990",
		"1990-03-10",
		"20230310",
		"1/2/03",
		// Names
		"March 10, 1990",
		"Mon, 10 Mar 1990",
		"10th of March",
		"May 5",
		// Clock
		"14:30:45",
		"2:30 PM",
		"7p",
		"14:30:45.123+05:00",
		"1990-03-10T14:30:00Z",
		"14:30 GMT-0800",
		// Degenerate
		" ",
		"hello",
		"::::",
		"1:2:3:4:5",
		"+-+-",
		"99999999999999999999999",
		"\xff\xfe",
		"\x00 12 \x00",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		res, err := Classify(s)
		if s == "" {
			if err == nil {
				t.Fatal("empty input accepted")
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		verifyResult(t, s, res)

		for _, tag := range []string{"en-GB", "ja", "xx"} {
			lres, err := ClassifyLocale(s, tag)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", tag, err)
			}
			verifyResult(t, s, lres)
			if len(lres.Interpretations) != len(res.Interpretations) {
				t.Errorf("%s changed interpretation count: %d vs %d", tag, len(lres.Interpretations), len(res.Interpretations))
			}
		}
	})
}
