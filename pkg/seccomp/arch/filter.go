package arch

// CmpOp is the comparison operator of one argument predicate.
type CmpOp uint32

const (
	CmpInvalid CmpOp = iota
	CmpNE
	CmpLT
	CmpLE
	CmpEQ
	CmpGE
	CmpGT
	CmpMaskedEQ
)

func (op CmpOp) String() string {
	switch op {
	case CmpNE:
		return "!="
	case CmpLT:
		return "<"
	case CmpLE:
		return "<="
	case CmpEQ:
		return "=="
	case CmpGE:
		return ">="
	case CmpGT:
		return ">"
	case CmpMaskedEQ:
		return "&=="
	default:
		return "invalid"
	}
}

// ArgCmp is one comparison over one syscall argument. Mask is only
// meaningful for CmpMaskedEQ.
type ArgCmp struct {
	Arg   uint   `json:"arg"`
	Op    CmpOp  `json:"op"`
	Mask  uint64 `json:"mask,omitempty"`
	Datum uint64 `json:"datum"`
}

// FilterChain is the ordered argument-comparison chain of one filter
// rule. The chain is owned by the caller and is mutated in place only
// when a rewrite succeeds.
type FilterChain []ArgCmp

// RewriteFilter performs the architecture's syscall-number rewrite and
// adjusts the argument chain to stay valid under the dispatcher's calling
// convention. In strict mode a comparison that cannot be re-expressed
// exactly fails the whole call and leaves the chain untouched; in
// best-effort mode such comparisons are dropped, which only ever makes
// the filter more permissive. The number rewrite itself must succeed in
// both modes. Architectures without a chain rewrite rule report
// ErrArchNotSupported with the chain untouched; whether that rejects the
// rule is the caller's decision.
func (ai *Info) RewriteFilter(strict bool, num *int, chain *FilterChain) error {
	h := handlerFor(ai.Token)
	if h == nil || h.rewriteFilter == nil {
		return ErrArchNotSupported
	}

	return h.rewriteFilter(strict, num, chain)
}
