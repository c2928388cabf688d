package services

// OptionDiff saklı seçenekler ile gelen liste arasındaki fark.
type OptionDiff struct {
	Inserts   []OptionInput
	Updates   []OptionInput
	DeleteIDs []string
}

// DiffOptions gelen listeyi saklı ID kümesiyle karşılaştırır:
// ID'siz veya bilinmeyen ID'li giriş eklenir, bilinen ID güncellenir,
// gelen listede olmayan saklı ID silinir. Aynı ID birden çok kez gelirse sonuncusu geçerlidir.
func DiffOptions(storedIDs []string, incoming []OptionInput) OptionDiff {
	stored := make(map[string]struct{}, len(storedIDs))
	for _, id := range storedIDs {
		stored[id] = struct{}{}
	}

	var diff OptionDiff
	updateAt := make(map[string]int)
	for _, in := range incoming {
		if in.ID == nil || *in.ID == "" {
			diff.Inserts = append(diff.Inserts, OptionInput{OptionText: in.OptionText, OrderIndex: in.OrderIndex})
			continue
		}
		id := *in.ID
		if _, ok := stored[id]; !ok {
			// bilinmeyen ID: sunucu yeni ID üretir
			diff.Inserts = append(diff.Inserts, OptionInput{OptionText: in.OptionText, OrderIndex: in.OrderIndex})
			continue
		}
		if i, seen := updateAt[id]; seen {
			diff.Updates[i] = in
			continue
		}
		updateAt[id] = len(diff.Updates)
		diff.Updates = append(diff.Updates, in)
	}

	for _, id := range storedIDs {
		if _, kept := updateAt[id]; !kept {
			diff.DeleteIDs = append(diff.DeleteIDs, id)
		}
	}
	return diff
}
