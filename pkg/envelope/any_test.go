package envelope

import (
	"reflect"
	"testing"
)

func TestSucceedAny_NoPayload(t *testing.T) {
	a := SucceedAny()
	if !a.Success() {
		t.Fatal("expected success")
	}
	if a.Data() != nil {
		t.Fatalf("unexpected data: %v", a.Data())
	}
	if a.StatusCode() != 200 {
		t.Fatalf("unexpected status: %d", a.StatusCode())
	}
	if a.Errors() != nil {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}

func TestSucceedAnyData_CarriesPayload(t *testing.T) {
	a := SucceedAnyData(map[string]int{"n": 1}, 202)
	if a.StatusCode() != 202 {
		t.Fatalf("unexpected status: %d", a.StatusCode())
	}
	if !reflect.DeepEqual(a.Data(), map[string]int{"n": 1}) {
		t.Fatalf("unexpected data: %v", a.Data())
	}
}

func TestSucceedCrudAny_Messages(t *testing.T) {
	if a := SucceedCreateAny("User"); a.Data() != "User is created" || a.StatusCode() != 201 {
		t.Fatalf("unexpected create envelope: %v %d", a.Data(), a.StatusCode())
	}
	if a := SucceedUpdateAny("Product"); a.Data() != "Product is updated" || a.StatusCode() != 200 {
		t.Fatalf("unexpected update envelope: %v %d", a.Data(), a.StatusCode())
	}
	if a := SucceedDeleteAny("Order"); a.Data() != "Order is deleted" {
		t.Fatalf("unexpected delete envelope: %v", a.Data())
	}
	if a := SucceedRemoveAny("Order"); a.Data() != "Order is removed" {
		t.Fatalf("unexpected remove envelope: %v", a.Data())
	}
}

func TestSucceedCrudAny_NameFromTypeParameter(t *testing.T) {
	// TypeName feeds the untyped CRUD constructors an explicit type
	// parameter at the call site.
	a := SucceedCreateAny(TypeName[user]())
	if a.Data() != "user is created" {
		t.Fatalf("unexpected message: %v", a.Data())
	}
}

func TestFailAny_Defaults(t *testing.T) {
	a := FailAny("not found")
	if a.Success() {
		t.Fatal("expected failure")
	}
	if a.StatusCode() != 500 {
		t.Fatalf("unexpected status: %d", a.StatusCode())
	}
	if !reflect.DeepEqual(a.Errors(), []string{"not found"}) {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
	if a.Data() != nil {
		t.Fatalf("unexpected data: %v", a.Data())
	}
}

func TestFailAllAny_PreservesOrder(t *testing.T) {
	a := FailAllAny([]string{"e1", "e2"}, 400)
	if a.StatusCode() != 400 {
		t.Fatalf("unexpected status: %d", a.StatusCode())
	}
	if !reflect.DeepEqual(a.Errors(), []string{"e1", "e2"}) {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}

func TestAny_FluentChaining(t *testing.T) {
	a := FailAny("bad").WithStatusCode(422).WithError("name required").WithData("partial")
	if a.Success() {
		t.Fatal("expected failure flag to survive setters")
	}
	if a.StatusCode() != 422 {
		t.Fatalf("unexpected status: %d", a.StatusCode())
	}
	if !reflect.DeepEqual(a.Errors(), []string{"bad", "name required"}) {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
	if a.Data() != "partial" {
		t.Fatalf("unexpected data: %v", a.Data())
	}
}

func TestAny_WithErrorAccumulates(t *testing.T) {
	a := SucceedAny().WithError("first").WithError("second")
	if !a.Success() {
		t.Fatal("success flag must survive WithError")
	}
	if !reflect.DeepEqual(a.Errors(), []string{"first", "second"}) {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}

func TestAny_WithErrorsOverwrites(t *testing.T) {
	a := FailAny("old").WithErrors([]string{"new"})
	if !reflect.DeepEqual(a.Errors(), []string{"new"}) {
		t.Fatalf("unexpected errors: %v", a.Errors())
	}
}
