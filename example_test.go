package typocheck_test

import (
	"context"
	"fmt"

	"github.com/optimode/typocheck"
)

func ExampleNew() {
	c := typocheck.New()
	v, _ := c.Classify("user@gmail.com")
	fmt.Println(v.Status)
	// Output: valid
}

func ExampleClassifier_Classify() {
	c := typocheck.New()

	v, _ := c.Classify("user@gmial.com")
	fmt.Printf("%s %s %.3f\n", v.Status, v.SuggestedEmail, v.Confidence)

	v, _ = c.Classify("user@example.com")
	fmt.Println(v.Status)

	v, _ = c.Classify("not-an-email")
	fmt.Println(v.Status)
	// Output:
	// valid_with_suggestion user@gmail.com 0.778
	// valid_unknown_domain
	// malformed
}

func ExampleClassifier_WithDomains() {
	c := typocheck.New().
		WithDomains([]string{"foo.com"}).
		WithThreshold(1)

	v, _ := c.Classify("user@fooo.com")
	fmt.Printf("%s %.3f\n", v.SuggestedEmail, v.Confidence)
	// Output: user@foo.com 0.875
}

func ExampleClassifier_ClassifyMany() {
	c := typocheck.New()
	emails := []string{"alice@yaho.com", "invalid", "bob@gmail.com"}

	verdicts, _ := c.ClassifyMany(context.Background(), emails, typocheck.ConcurrencyOptions{
		Workers: 2,
	})

	for _, v := range verdicts {
		fmt.Printf("%-16s %s\n", v.Email, v.Status)
	}
	// Output:
	// alice@yaho.com   valid_with_suggestion
	// invalid          malformed
	// bob@gmail.com    valid
}
