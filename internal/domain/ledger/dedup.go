package ledger

import (
	"strconv"
	"strings"
)

// DedupIdentity removes rows that share a document identity. The key is
// "{source}:{sourceId}" when both halves are present; rows missing either
// fall back to a composite of everything that identifies the row. First
// occurrence wins. Idempotent: running it twice yields the same set.
func DedupIdentity(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0:0]
	for _, e := range entries {
		key := identityKey(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// DedupSemantic collapses supplier-payment rows captured more than once
// with different document identifiers but identical business meaning:
// same day, voucher, particulars and amount. Rows of any other category
// pass through unchanged.
func DedupSemantic(entries []Entry) []Entry {
	seen := make(map[string]struct{})
	out := entries[:0:0]
	for _, e := range entries {
		if !strings.EqualFold(e.Category, CategorySupplierPayment) {
			out = append(out, e)
			continue
		}
		sig := semanticSignature(e)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, e)
	}
	return out
}

func identityKey(e Entry) string {
	if e.Source != "" && e.SourceID != "" {
		return e.Source + ":" + e.SourceID
	}
	return strings.Join([]string{
		e.Source,
		e.SourceID,
		e.Category,
		e.Voucher,
		epochOrEmpty(e),
		e.Debit.String(),
		e.Credit.String(),
	}, "|")
}

func semanticSignature(e Entry) string {
	return strings.Join([]string{
		"supplier_payment",
		dayISO(e),
		strings.ToLower(strings.TrimSpace(e.Voucher)),
		strings.ToLower(strings.TrimSpace(e.Particulars)),
		e.Debit.StringFixed(2),
	}, "|")
}

// dayISO renders the entry date as a day-precision ISO string,
// empty when the date is missing.
func dayISO(e Entry) string {
	if e.Date == nil {
		return ""
	}
	return e.Date.Format("2006-01-02")
}

// epochOrEmpty renders the entry date as Unix milliseconds,
// empty when the date is missing.
func epochOrEmpty(e Entry) string {
	if e.Date == nil {
		return ""
	}
	return strconv.FormatInt(e.Date.UnixMilli(), 10)
}
