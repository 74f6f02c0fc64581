// Package printing groups queued receipts onto physical A4 sheets.
package printing

import "github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"

// ReceiptsPerPage is the fixed 2x2 grid capacity of one A4 sheet.
const ReceiptsPerPage = 4

// Pack partitions receipts into consecutive groups of ReceiptsPerPage,
// preserving order. The last group holds whatever remains (1-4 entries);
// short groups still map to a full sheet with blank slots.
func Pack(receipts []models.Receipt) [][]models.Receipt {
	if len(receipts) == 0 {
		return nil
	}
	pages := make([][]models.Receipt, 0, (len(receipts)+ReceiptsPerPage-1)/ReceiptsPerPage)
	for i := 0; i < len(receipts); i += ReceiptsPerPage {
		end := i + ReceiptsPerPage
		if end > len(receipts) {
			end = len(receipts)
		}
		pages = append(pages, receipts[i:end])
	}
	return pages
}

// PageEstimate is the sheet count shown in the queue header. It is computed
// from the queue length alone, so it can overshoot when the queue still
// references deleted receipts; that skew is accepted.
func PageEstimate(queueLen int) int {
	if queueLen <= 0 {
		return 0
	}
	return (queueLen + ReceiptsPerPage - 1) / ReceiptsPerPage
}
