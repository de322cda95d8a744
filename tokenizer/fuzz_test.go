package tokenizer

import "testing"

func FuzzScan(f *testing.F) {
	seeds := []string{
		"03/10/1990",
		"Mar 10 1990 14:30:45",
		"2:30 PM",
		"1990-03-10T14:30:00Z",
		"Monday, March 10th",
		"",
		"\xff\xfe",
		"\x00 \t\n",
		"März 2026",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		tokens := Scan(s)
		verifyInvariants(t, s, tokens)
		for _, tok := range tokens {
			if tok.Start >= tok.End {
				t.Errorf("empty token %s", tok)
			}
			if tok.Type < Word || tok.Type > Symbol {
				t.Errorf("invalid type %d", tok.Type)
			}
		}
	})
}
