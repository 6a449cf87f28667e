package parser

// Pair is the value produced by Then.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Then runs p, then q on the remaining input, and yields both values. A
// failure of q after p consumed anything is committed: the sequence has moved
// past input it cannot give back, so an enclosing Or must not fall back.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(in Input) Result[Pair[A, B]] {
		rp := p(in)
		if !rp.OK {
			return failAs[Pair[A, B]](rp)
		}
		rq := q(in.Advance(rp.Consumed))
		if !rq.OK {
			out := failAs[Pair[A, B]](rq)
			if rp.Consumed > 0 {
				out.Committed = true
			}
			return out
		}
		return Succeed(Pair[A, B]{rp.Value, rq.Value}, rp.Consumed+rq.Consumed)
	}
}

// SkipThen sequences p and q, keeping only q's value.
func SkipThen[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Then(p, q), func(v Pair[A, B]) B { return v.Second })
}

// ThenSkip sequences p and q, keeping only p's value.
func ThenSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Then(p, q), func(v Pair[A, B]) A { return v.First })
}

// Or tries each parser in order at the same position and returns the first
// success. A committed failure stops the scan and is returned as-is: the
// failing branch consumed input, so it owns the error. When every branch
// fails uncommitted, the last failure is returned.
func Or[T any](parsers ...Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		var r Result[T]
		for _, p := range parsers {
			r = p(in)
			if r.OK || r.Committed {
				return r
			}
		}
		return r
	}
}

// Attempt demotes a committed failure of p to an uncommitted one, re-enabling
// fallback in an enclosing Or. This is the only construct that clears the
// flag.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := p(in)
		if !r.OK {
			r.Committed = false
		}
		return r
	}
}

// Map applies f to the value of a successful parse.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) Result[B] {
		r := p(in)
		if !r.OK {
			return failAs[B](r)
		}
		return Succeed(f(r.Value), r.Consumed)
	}
}

// Bind runs p and feeds its value to f, which chooses the parser to continue
// with. Entering the continuation after p consumed anything counts as
// commitment; with a zero-consumption left side the continuation's own flag
// is kept, so Attempt-wrapped prefixes still enable fallback.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Input) Result[B] {
		rp := p(in)
		if !rp.OK {
			return failAs[B](rp)
		}
		rq := f(rp.Value)(in.Advance(rp.Consumed))
		if !rq.OK {
			if rp.Consumed > 0 {
				rq.Committed = true
			}
			return rq
		}
		rq.Consumed += rp.Consumed
		return rq
	}
}
