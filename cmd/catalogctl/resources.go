package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"library-catalog/pkg/client"
	"library-catalog/pkg/client/view"
)

func runResource(ctx context.Context, c *client.Client, resource string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a subcommand: list, get, create, update or delete", resource)
	}
	sub, rest := args[0], args[1:]

	switch resource {
	case "authors":
		return runAuthors(ctx, c, sub, rest)
	case "publishers":
		return runPublishers(ctx, c, sub, rest)
	case "books":
		return runBooks(ctx, c, sub, rest)
	}
	return fmt.Errorf("unknown resource %q", resource)
}

// listFlags are the paging flags every list subcommand shares.
func listFlags(fs *flag.FlagSet) (page, perPage *int) {
	page = fs.Int("page", 1, "page number")
	perPage = fs.Int("per-page", 0, "items per page (server default 10)")
	return page, perPage
}

func parseIDArg(fs *flag.FlagSet, args []string) (int64, error) {
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", fs.Arg(0))
	}
	return id, nil
}

func printPageFooter[T any](p *client.Page[T]) {
	fmt.Printf("page %d/%d  (%d total)\n", p.CurrentPage, p.LastPage, p.Total)
}

func strFlag(fs *flag.FlagSet, name, usage string) **string {
	var ptr *string
	fs.Func(name, usage, func(v string) error {
		ptr = &v
		return nil
	})
	return &ptr
}

func int64Flag(fs *flag.FlagSet, name, usage string) **int64 {
	var ptr *int64
	fs.Func(name, usage, func(v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q", name, v)
		}
		ptr = &n
		return nil
	})
	return &ptr
}

func runAuthors(ctx context.Context, c *client.Client, sub string, args []string) error {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("authors list", flag.ContinueOnError)
		page, perPage := listFlags(fs)
		name := fs.String("name", "", "filter by name (substring)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		lc := view.NewListController(c.Authors.List)
		if err := lc.SetFilter(ctx, client.ListOptions{Name: *name, PerPage: *perPage}); err != nil {
			return err
		}
		if *page > 1 {
			if err := lc.SetPage(ctx, *page); err != nil {
				return err
			}
		}
		p := lc.Page()
		for _, a := range p.Data {
			fmt.Printf("#%d  %s\n", a.ID, a.Name)
		}
		printPageFooter(p)
		return nil

	case "get":
		fs := flag.NewFlagSet("authors get", flag.ContinueOnError)
		id, err := parseIDArg(fs, args)
		if err != nil {
			return err
		}
		dc := view.NewDetailController[client.Author, client.AuthorInput](c.Authors)
		if err := dc.Open(ctx, id); err != nil {
			return err
		}
		a := dc.Record()
		fmt.Printf("#%d  %s\n", a.ID, a.Name)
		if a.Bio != nil {
			fmt.Println(*a.Bio)
		}
		return nil

	case "create", "update":
		fs := flag.NewFlagSet("authors "+sub, flag.ContinueOnError)
		name := strFlag(fs, "name", "author name")
		bio := strFlag(fs, "bio", "short biography")

		dc := view.NewDetailController[client.Author, client.AuthorInput](c.Authors)
		dc.SetValidator(func(in client.AuthorInput) error {
			if sub == "create" && (in.Name == nil || *in.Name == "") {
				return fmt.Errorf("authors create requires -name")
			}
			return nil
		})
		if sub == "update" {
			id, err := parseIDArg(fs, args)
			if err != nil {
				return err
			}
			if err := dc.Open(ctx, id); err != nil {
				return err
			}
			dc.Edit(client.AuthorInput{})
		} else if err := fs.Parse(args); err != nil {
			return err
		}
		dc.SetDraft(client.AuthorInput{Name: *name, Bio: *bio})
		a, err := dc.Save(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("saved author #%d  %s\n", a.ID, a.Name)
		return nil

	case "delete":
		fs := flag.NewFlagSet("authors delete", flag.ContinueOnError)
		id, err := parseIDArg(fs, args)
		if err != nil {
			return err
		}
		if err := c.Authors.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted author #%d\n", id)
		return nil
	}
	return fmt.Errorf("unknown authors subcommand %q", sub)
}

func runPublishers(ctx context.Context, c *client.Client, sub string, args []string) error {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("publishers list", flag.ContinueOnError)
		page, perPage := listFlags(fs)
		name := fs.String("name", "", "filter by name (substring)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		lc := view.NewListController(c.Publishers.List)
		if err := lc.SetFilter(ctx, client.ListOptions{Name: *name, PerPage: *perPage}); err != nil {
			return err
		}
		if *page > 1 {
			if err := lc.SetPage(ctx, *page); err != nil {
				return err
			}
		}
		p := lc.Page()
		for _, pub := range p.Data {
			fmt.Printf("#%d  %s\n", pub.ID, pub.Name)
		}
		printPageFooter(p)
		return nil

	case "get":
		fs := flag.NewFlagSet("publishers get", flag.ContinueOnError)
		id, err := parseIDArg(fs, args)
		if err != nil {
			return err
		}
		dc := view.NewDetailController[client.Publisher, client.PublisherInput](c.Publishers)
		if err := dc.Open(ctx, id); err != nil {
			return err
		}
		pub := dc.Record()
		fmt.Printf("#%d  %s\n", pub.ID, pub.Name)
		if pub.Address != nil {
			fmt.Println(*pub.Address)
		}
		return nil

	case "create", "update":
		fs := flag.NewFlagSet("publishers "+sub, flag.ContinueOnError)
		name := strFlag(fs, "name", "publisher name")
		address := strFlag(fs, "address", "postal address")

		dc := view.NewDetailController[client.Publisher, client.PublisherInput](c.Publishers)
		dc.SetValidator(func(in client.PublisherInput) error {
			if sub == "create" && (in.Name == nil || *in.Name == "") {
				return fmt.Errorf("publishers create requires -name")
			}
			return nil
		})
		if sub == "update" {
			id, err := parseIDArg(fs, args)
			if err != nil {
				return err
			}
			if err := dc.Open(ctx, id); err != nil {
				return err
			}
			dc.Edit(client.PublisherInput{})
		} else if err := fs.Parse(args); err != nil {
			return err
		}
		dc.SetDraft(client.PublisherInput{Name: *name, Address: *address})
		pub, err := dc.Save(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("saved publisher #%d  %s\n", pub.ID, pub.Name)
		return nil

	case "delete":
		fs := flag.NewFlagSet("publishers delete", flag.ContinueOnError)
		id, err := parseIDArg(fs, args)
		if err != nil {
			return err
		}
		if err := c.Publishers.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted publisher #%d\n", id)
		return nil
	}
	return fmt.Errorf("unknown publishers subcommand %q", sub)
}

func runBooks(ctx context.Context, c *client.Client, sub string, args []string) error {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("books list", flag.ContinueOnError)
		page, perPage := listFlags(fs)
		title := fs.String("title", "", "filter by title (substring)")
		sortBy := fs.String("sort-by", "", "sort column: id, title, author_id, publisher_id, created_at")
		order := fs.String("order", "", "sort order: asc or desc")
		authorID := int64Flag(fs, "author", "filter by author id")
		publisherID := int64Flag(fs, "publisher", "filter by publisher id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		lc := view.NewListController(c.Books.List)
		err := lc.SetFilter(ctx, client.ListOptions{
			Title:       *title,
			PerPage:     *perPage,
			AuthorID:    *authorID,
			PublisherID: *publisherID,
			SortBy:      *sortBy,
			Order:       *order,
		})
		if err != nil {
			return err
		}
		if *page > 1 {
			if err := lc.SetPage(ctx, *page); err != nil {
				return err
			}
		}
		p := lc.Page()
		for _, b := range p.Data {
			author, publisher := "?", "?"
			if b.Author != nil {
				author = b.Author.Name
			}
			if b.Publisher != nil {
				publisher = b.Publisher.Name
			}
			fmt.Printf("#%d  %s  (%s / %s)\n", b.ID, b.Title, author, publisher)
		}
		printPageFooter(p)
		return nil

	case "get":
		fs := flag.NewFlagSet("books get", flag.ContinueOnError)
		id, err := parseIDArg(fs, args)
		if err != nil {
			return err
		}
		dc := view.NewDetailController[client.Book, client.BookInput](c.Books)
		if err := dc.Open(ctx, id); err != nil {
			return err
		}
		b := dc.Record()
		fmt.Printf("#%d  %s\n", b.ID, b.Title)
		if b.Description != nil {
			fmt.Println(*b.Description)
		}
		if b.Author != nil {
			fmt.Printf("author:    #%d %s\n", b.Author.ID, b.Author.Name)
		}
		if b.Publisher != nil {
			fmt.Printf("publisher: #%d %s\n", b.Publisher.ID, b.Publisher.Name)
		}
		return nil

	case "create", "update":
		fs := flag.NewFlagSet("books "+sub, flag.ContinueOnError)
		title := strFlag(fs, "title", "book title")
		description := strFlag(fs, "description", "description")
		authorID := int64Flag(fs, "author", "author id")
		publisherID := int64Flag(fs, "publisher", "publisher id")

		dc := view.NewDetailController[client.Book, client.BookInput](c.Books)
		dc.SetValidator(func(in client.BookInput) error {
			if sub == "create" && (in.Title == nil || *in.Title == "") {
				return fmt.Errorf("books create requires -title")
			}
			return nil
		})
		if sub == "update" {
			id, err := parseIDArg(fs, args)
			if err != nil {
				return err
			}
			if err := dc.Open(ctx, id); err != nil {
				return err
			}
			dc.Edit(client.BookInput{})
		} else {
			if err := fs.Parse(args); err != nil {
				return err
			}
			// Creating needs both references; show the first page of each
			// when one is missing.
			if *authorID == nil || *publisherID == nil {
				return suggestBookRefs(ctx, c, *authorID == nil, *publisherID == nil)
			}
		}
		dc.SetDraft(client.BookInput{
			Title:       *title,
			Description: *description,
			AuthorID:    *authorID,
			PublisherID: *publisherID,
		})
		b, err := dc.Save(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("saved book #%d  %s\n", b.ID, b.Title)
		return nil

	case "delete":
		fs := flag.NewFlagSet("books delete", flag.ContinueOnError)
		id, err := parseIDArg(fs, args)
		if err != nil {
			return err
		}
		if err := c.Books.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted book #%d\n", id)
		return nil
	}
	return fmt.Errorf("unknown books subcommand %q", sub)
}

func suggestBookRefs(ctx context.Context, c *client.Client, needAuthor, needPublisher bool) error {
	if needAuthor {
		authors, err := c.Authors.List(ctx, client.ListOptions{Page: 1})
		if err != nil {
			return err
		}
		fmt.Println("pick an author with -author <id>:")
		for _, a := range authors.Data {
			fmt.Printf("  #%d  %s\n", a.ID, a.Name)
		}
	}
	if needPublisher {
		publishers, err := c.Publishers.List(ctx, client.ListOptions{Page: 1})
		if err != nil {
			return err
		}
		fmt.Println("pick a publisher with -publisher <id>:")
		for _, p := range publishers.Data {
			fmt.Printf("  #%d  %s\n", p.ID, p.Name)
		}
	}
	return fmt.Errorf("books create requires -author and -publisher")
}
