package integrations_test

import (
	"fmt"

	"github.com/jasonlovesdoggo/gitsocial/pkg/integrations"
)

func ExampleNormalizeRepoURL() {
	fmt.Println(integrations.NormalizeRepoURL("git@github.com:JasonLovesDoggo/gitsocial.git"))
	fmt.Println(integrations.NormalizeRepoURL("git+https://github.com/golang/go"))
	// Output:
	// https://github.com/JasonLovesDoggo/gitsocial
	// https://github.com/golang/go
}
