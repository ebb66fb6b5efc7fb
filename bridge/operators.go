package bridge

// operatorTable maps a fixed, enumerated set of operator names to their
// remote-global qualified function names, resolved once per Bridge and
// reused. Keeping arithmetic out of the wire protocol keeps it small: an
// operator application is just `call(op_fn, lhs, rhs)` (§4.6, §9).
var operatorTable = map[string]string{
	"add":      "operator.add",
	"sub":      "operator.sub",
	"mul":      "operator.mul",
	"truediv":  "operator.truediv",
	"floordiv": "operator.floordiv",
	"mod":      "operator.mod",
	"pow":      "operator.pow",
	"matmul":   "operator.matmul",
	"lshift":   "operator.lshift",
	"rshift":   "operator.rshift",
	"and":      "operator.and_",
	"or":       "operator.or_",
	"xor":      "operator.xor",
	"lt":       "operator.lt",
	"le":       "operator.le",
	"eq":       "operator.eq",
	"ne":       "operator.ne",
	"gt":       "operator.gt",
	"ge":       "operator.ge",
	"neg":      "operator.neg",
	"pos":      "operator.pos",
	"abs":      "operator.abs",
	"invert":   "operator.invert",
	"not":      "operator.not_",
	"is":       "operator.is_",
	"isnot":    "operator.is_not",
	"contains": "operator.contains",
	"getitem":  "operator.getitem",
	"setitem":  "operator.setitem",
	"delitem":  "operator.delitem",
	"iadd":     "operator.iadd",
	"isub":     "operator.isub",
	"imul":     "operator.imul",
}

// operatorFn resolves and caches the remote function for a named operator.
func (b *Bridge) operatorFn(name string) (*Object, error) {
	if fn, ok := b.operators[name]; ok {
		dup, err := fn.Dup()
		if err != nil {
			return nil, err
		}
		return dup, nil
	}
	qualified, ok := operatorTable[name]
	if !ok {
		return nil, &MisuseError{Msg: "unknown operator: " + name}
	}
	fn, err := b.global(qualified)
	if err != nil {
		return nil, err
	}
	b.operators[name] = fn
	dup, err := fn.Dup()
	if err != nil {
		return nil, err
	}
	return dup, nil
}

// BinaryOp applies a binary operator (e.g. "add", "sub", "pow") to lhs, rhs.
func (b *Bridge) BinaryOp(name string, lhs, rhs *Object) (*Object, error) {
	fn, err := b.operatorFn(name)
	if err != nil {
		return nil, err
	}
	defer fn.Close()
	return b.call(fn, lhs, rhs)
}

// UnaryOp applies a unary operator (e.g. "neg", "invert", "abs") to obj.
func (b *Bridge) UnaryOp(name string, obj *Object) (*Object, error) {
	fn, err := b.operatorFn(name)
	if err != nil {
		return nil, err
	}
	defer fn.Close()
	return b.call(fn, obj)
}

// Pow computes base ** exp. Spelled as a dedicated method on the host side,
// per §9's note that "a * *b" is purely syntactic sugar with no wire impact
// in languages that spell exponentiation as a binary operator; Go has no
// such operator, so this is just BinaryOp("pow", ...) under a clearer name.
func (b *Bridge) Pow(base, exp *Object) (*Object, error) { return b.BinaryOp("pow", base, exp) }
