// Package delegate binds a method to a receiver and stores the pair as a
// plain comparable value.
//
// A delegate is built from a method expression:
//
//	d := delegate.MakeAction1(counter, (*Counter).Add)
//	d.Call(3) // counter.Add(3)
//
// The generic constructor captures a trampoline specialised for the
// receiver type and method signature, so invoking a delegate is one
// indirect call with no allocation. Interface method expressions such as
// Adder.Add dispatch dynamically, so the receiver's own implementation runs.
//
// Two delegates are equal when they bind the same receiver to the same
// method. Method identity is the method's code pointer: distinct closures
// created by the same function literal therefore compare equal, which is
// why method expressions are the intended input. Slice, map and func
// receivers are identified by their data pointer rather than their
// contents.
//
// MakeStaticActionN and MakeStaticFuncN bind plain functions and closures
// with no receiver; those compare by code pointer alone.
package delegate

import (
	"errors"
	"reflect"
)

var (
	ErrEmpty       = errors.New("delegate: call of empty delegate")
	ErrNilReceiver = errors.New("delegate: nil receiver")
	ErrNilMethod   = errors.New("delegate: nil method")
	// ErrUncomparableReceiver is raised for value receivers such as structs
	// holding slices, which have neither equality nor a reference identity.
	ErrUncomparableReceiver = errors.New("delegate: receiver can not be compared")
)

// Kind tells what a delegate is bound to.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindMethod
	KindStatic
)

// target is the receiver and method half shared by every delegate shape.
type target struct {
	receiver any
	method   any
	code     uintptr
	// key is what equality compares in place of receiver
	key any
}

type refKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

func identity(receiver any) (any, bool) {
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() || rv.Comparable() {
		return receiver, true
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	case reflect.Map, reflect.Func:
		return refKey{typ: rv.Type(), ptr: rv.Pointer()}, true
	}
	return nil, false
}

func bind[T any](receiver T, method any) target {
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() {
		panic(ErrNilReceiver)
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		if rv.IsNil() {
			panic(ErrNilReceiver)
		}
	}
	key, ok := identity(receiver)
	if !ok {
		panic(ErrUncomparableReceiver)
	}

	return target{
		receiver: receiver,
		method:   method,
		code:     codeOf(method),
		key:      key,
	}
}

func bindStatic(fn any) target {
	return target{
		method: fn,
		code:   codeOf(fn),
	}
}

func codeOf(method any) uintptr {
	mv := reflect.ValueOf(method)
	if mv.Kind() != reflect.Func || mv.IsNil() {
		panic(ErrNilMethod)
	}
	return mv.Pointer()
}

// IsValid reports whether the delegate is bound. Calling an unbound
// delegate panics.
func (t target) IsValid() bool {
	return t.method != nil
}

func (t target) Kind() Kind {
	switch {
	case t.method == nil:
		return KindEmpty
	case t.receiver == nil:
		return KindStatic
	}
	return KindMethod
}

// Receiver returns the bound receiver, nil for an empty or static delegate.
func (t target) Receiver() any {
	return t.receiver
}

// Code returns the entry address of the bound method, 0 for an empty
// delegate.
func (t target) Code() uintptr {
	return t.code
}

// Targets reports whether t binds receiver, regardless of the method.
func (t target) Targets(receiver any) bool {
	key, ok := identity(receiver)
	return ok && t.receiver != nil && t.key == key
}

// EqualStatic reports whether t is a static delegate bound to fn.
func (t target) EqualStatic(fn any) bool {
	fv := reflect.ValueOf(fn)
	if t.receiver != nil || t.method == nil || fv.Kind() != reflect.Func || fv.IsNil() {
		return false
	}
	return t.code == fv.Pointer()
}

func (t target) equal(o target) bool {
	return t.code == o.code && t.key == o.key
}
