package listview_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/bjaus/listview"
)

type contact struct {
	Name string
}

func (c contact) Initial() string { return strings.ToUpper(c.Name[:1]) }

func ExampleFormat() {
	contacts := []contact{{"bea"}, {"al"}, {"bo"}, {"ann"}}

	res := listview.Format(contacts,
		contact.Initial,
		contact.Initial,
		func(c contact) string { return c.Name },
	)

	for _, sid := range res.SectionIDs {
		header, _ := res.Content.Section(sid)
		fmt.Println(sid, header)
		for _, rid := range res.Rows(sid) {
			name, _ := res.Content.Row(rid)
			fmt.Println(" ", rid, name)
		}
	}

	// Output:
	// 0 B
	//   0,0 bea
	//   0,1 bo
	// 1 A
	//   1,0 al
	//   1,1 ann
}

func ExampleFormatFunc() {
	words := []string{"Go", "go", "GO", "rust"}

	res := listview.FormatFunc(words,
		func(w string) string { return w },
		strings.EqualFold,
		strings.ToLower,
		func(w string) string { return w },
	)

	fmt.Println(res.Len(), "sections")
	fmt.Println(res.RowIDs)

	// Output:
	// 2 sections
	// [[0,0 0,1 0,2] [1,0]]
}

func ExampleWrite() {
	res := listview.Format([]contact{{"al"}, {"bo"}, {"ann"}},
		contact.Initial,
		contact.Initial,
		func(c contact) string { return c.Name },
	)

	_ = listview.Write(os.Stdout, listview.JSON, res)

	// Output:
	// {"dataBlob":{"0":"A","0,0":"al","0,1":"ann","1":"B","1,0":"bo"},"sectionIDs":[0,1],"rowIDs":[["0,0","0,1"],["1,0"]]}
}
