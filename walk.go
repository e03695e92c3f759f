package anchormark

// Walk calls fn for every path reachable from items, depth-first and
// left-to-right. Compound paths yield their paths in stored order and
// groups are expanded recursively. Items of kind KindOther are skipped.
//
// Walk stops at the first error returned by fn and returns it unchanged.
// The items are never modified.
func Walk(items []Item, fn func(*Path) error) error {
	for _, it := range items {
		if err := walkItem(it, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkItem(it Item, fn func(*Path) error) error {
	switch v := it.(type) {
	case *Path:
		if v == nil {
			return nil
		}
		return fn(v)
	case *CompoundPath:
		if v == nil {
			return nil
		}
		for _, p := range v.Paths {
			if p == nil {
				continue
			}
			if err := fn(p); err != nil {
				return err
			}
		}
	case *Group:
		if v == nil {
			return nil
		}
		return Walk(v.Children, fn)
	default:
		Logger().Debug("anchormark: skipping unsupported item", "kind", kindOf(it))
	}
	return nil
}

func kindOf(it Item) string {
	if it == nil {
		return "nil"
	}
	if o, ok := it.(*Other); ok && o != nil && o.Type != "" {
		return o.Type
	}
	return it.Kind().String()
}

// Paths returns every path reachable from items in walk order.
func Paths(items []Item) []*Path {
	var out []*Path
	_ = Walk(items, func(p *Path) error {
		out = append(out, p)
		return nil
	})
	return out
}
