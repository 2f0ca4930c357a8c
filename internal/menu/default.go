package menu

import _ "embed"

//go:embed commands/special_ls.sh
var specialLS string

// DefaultSpec returns the built-in menu definition.
func DefaultSpec() Spec {
	return Spec{
		Title: defaultTitle,
		Items: []ItemSpec{
			{Name: "Eza", Command: "eza -la"},
			{Name: "sleep and Eza", Command: "sleep 2 && eza -la"},
			{Name: "Just ls, nothing special, trust me", Command: specialLS},
			{
				Name: "Test Category",
				Items: []ItemSpec{
					{Name: "sleep, eza, sleep, eza", Command: "sleep 1 && eza -la && sleep 1 && eza -la && echo Bonus eza comming... && sleep 1 && eza -la"},
					{Name: "Just open neovim :), because I can", Command: "nvim"},
					{Name: "Recursion?", Command: "runmenu"},
				},
			},
		},
	}
}

// Default builds the built-in menu tree.
func Default() *Tree {
	tree, err := Build(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return tree
}
