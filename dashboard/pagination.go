// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dashboard

// PageRef is one entry of the rendered page-navigation window: either a
// numbered page link or an ellipsis marker.
type PageRef struct {
	Number   uint64
	Ellipsis bool
	Current  bool
}

func pageRef(n, current uint64) PageRef {
	return PageRef{Number: n, Current: n == current}
}

var ellipsis = PageRef{Ellipsis: true}

// PageWindow computes the bounded page-link window for the given current
// page. Up to five pages are listed in full; longer collections collapse
// the middle with ellipsis markers around the current page.
func PageWindow(current, total uint64) []PageRef {
	if total == 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= 5 {
		refs := make([]PageRef, 0, total)
		for n := uint64(1); n <= total; n++ {
			refs = append(refs, pageRef(n, current))
		}
		return refs
	}

	switch {
	case current <= 3:
		return []PageRef{
			pageRef(1, current),
			pageRef(2, current),
			pageRef(3, current),
			ellipsis,
			pageRef(total, current),
		}
	case current >= total-2:
		return []PageRef{
			pageRef(1, current),
			ellipsis,
			pageRef(total-2, current),
			pageRef(total-1, current),
			pageRef(total, current),
		}
	default:
		return []PageRef{
			pageRef(1, current),
			ellipsis,
			pageRef(current-1, current),
			pageRef(current, current),
			pageRef(current+1, current),
			ellipsis,
			pageRef(total, current),
		}
	}
}
