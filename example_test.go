package jsrs_test

import (
	"fmt"

	"github.com/metarhia/jsrs"
)

func ExampleParse() {
	v, err := jsrs.Parse([]byte("{name:'Marcus',age:13,parents:['Eva','Carl']}"))
	if err != nil {
		panic(err)
	}
	name, _ := v.Key("name").AsString()
	age, _ := v.Key("age").AsInt()
	fmt.Println(name, age, v.Key("parents").Len())
	// Output:
	// Marcus 13 2
}

func ExampleStringify() {
	v := jsrs.NewObject().
		Set("answer", jsrs.NewInt(42)).
		Set("seen", jsrs.NewArray(jsrs.NewUndefined(), jsrs.NewBool(true)))
	s, _ := jsrs.Stringify(v)
	fmt.Println(s)
	// Output:
	// {answer:42,seen:[,true]}
}

func ExampleParseMessages() {
	var records []*jsrs.Value
	tail, err := jsrs.ParseMessages([]byte("{a:1}\x00{b:2}\x00{c:"), &records)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(records), string(tail))
	// Output:
	// 2 {c:
}
