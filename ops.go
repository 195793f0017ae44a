package viewkit

// IncrementAll adds one to every element, writing through the view into
// the backing buffer. Aliasing views observe the updated values.
func IncrementAll[T Integer](v View[T]) error {
	if v.readonly {
		return ErrReadOnly
	}
	for i := range v.elems {
		v.elems[i]++
	}
	return nil
}

// DecrementAll subtracts one from every element; the inverse of
// IncrementAll.
func DecrementAll[T Integer](v View[T]) error {
	if v.readonly {
		return ErrReadOnly
	}
	for i := range v.elems {
		v.elems[i]--
	}
	return nil
}
