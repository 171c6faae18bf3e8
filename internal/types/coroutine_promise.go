package types

// CoroutineType is Coroutine(F) for F a FunctionType: a suspendable function
// value created with `spawn` semantics reversed (the declaration side of a
// coroutine, as opposed to Promise which is the call side).
type CoroutineType struct {
	Func *FunctionType
}

func (c *CoroutineType) Kind() Kind        { return KindCoroutine }
func (c *CoroutineType) String() string    { return "coroutine<" + c.Func.String() + ">" }
func (c *CoroutineType) Serialize() string { return "coroutine:" + c.Func.Serialize() }

func (c *CoroutineType) Equals(other Type) bool {
	o, ok := Dereference(other).(*CoroutineType)
	return ok && c.Func.Equals(o.Func)
}

func (c *CoroutineType) CloneWithSubstitution(subst map[string]Type) Type {
	return &CoroutineType{Func: c.Func.CloneWithSubstitution(subst).(*FunctionType)}
}

func (c *CoroutineType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*CoroutineType)
	if !ok {
		return nil
	}
	return c.Func.ExtractGenericsAgainst(o.Func, generics, out)
}

// PromiseType is Promise(T): the result of `spawn`-ing a call, unwrapped by
// `await` back to T.
type PromiseType struct {
	Inner Type
}

func (p *PromiseType) Kind() Kind        { return KindPromise }
func (p *PromiseType) String() string    { return "promise<" + p.Inner.String() + ">" }
func (p *PromiseType) Serialize() string { return "promise:" + p.Inner.Serialize() }

func (p *PromiseType) Equals(other Type) bool {
	o, ok := Dereference(other).(*PromiseType)
	return ok && p.Inner.Equals(o.Inner)
}

func (p *PromiseType) CloneWithSubstitution(subst map[string]Type) Type {
	return &PromiseType{Inner: p.Inner.CloneWithSubstitution(subst)}
}

func (p *PromiseType) ExtractGenericsAgainst(actual Type, generics map[string]bool, out map[string]Type) error {
	o, ok := Dereference(actual).(*PromiseType)
	if !ok {
		return nil
	}
	return p.Inner.ExtractGenericsAgainst(o.Inner, generics, out)
}
