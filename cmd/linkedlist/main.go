// Command linkedlist walks a list through prepend, append, insert, delete and
// find, printing the list as it goes.
package main

import (
	"fmt"

	"linked_list_code/list"
)

func main() {
	l := list.New[int]()
	l.Prepend(10)
	l.Prepend(20)
	l.Prepend(30)
	l.Append(1)
	l.Insert(3000, 2)
	fmt.Println(l)

	l.Delete(20)
	fmt.Println(l)

	if r, ok := l.Find(20); ok {
		v, _ := l.Value(r)
		fmt.Printf("found %v\n", v)
	} else {
		fmt.Println("not found")
	}
}
