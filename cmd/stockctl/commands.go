package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inventory-task-simulator/internal/catalog"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/query"
)

var errUsage = errors.New("no command given, run stockctl -h for a list")

type command struct {
	name string
	help string
	run  func(a *app, ctx context.Context, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"products", "browse products: [-search s] [-category id] [-sort key] [-page n]", (*app).browseProducts},
		{"product", "show one product: <id>", (*app).showProduct},
		{"low-stock", "list products at or below minimum stock", (*app).lowStock},
		{"product-add", "create a product: -name n -price p [-stock n] [-min n] [-unit u] [-category id] [-desc d]", (*app).addProduct},
		{"product-update", "update a product: <id> [-name n] [-price p] [-stock n] [-physical n] [-min n] [-unit u] [-category id] [-desc d]", (*app).updateProduct},
		{"product-rm", "delete a product: <id>", (*app).removeProduct},
		{"categories", "list categories", (*app).listCategories},
		{"category-add", "create a category: -name n [-slug s] [-desc d] [-icon i] [-color c]", (*app).addCategory},
		{"category-rm", "delete a category: <id>", (*app).removeCategory},
		{"tasks", "list tasks: [-search s]", (*app).listTasks},
		{"task", "show one task: <id>", (*app).showTask},
		{"task-add", "create a task: -title t [-desc d] [-priority p] [-due YYYY-MM-DD]", (*app).addTask},
		{"task-update", "update a task: <id> [-title t] [-desc d] [-priority p] [-due YYYY-MM-DD] [-status s]", (*app).updateTask},
		{"task-toggle", "advance a task status: <id>", (*app).toggleTask},
		{"task-rm", "delete a task: <id>", (*app).removeTask},
	}
}

// parse accepts the record id either before or after the flags.
func parse(fs *flag.FlagSet, args []string, wantID bool) (string, error) {
	id := ""
	if wantID && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if !wantID {
		return "", nil
	}
	if id == "" {
		id = fs.Arg(0)
	}
	if id == "" {
		return "", fmt.Errorf("%s: missing <id>", fs.Name())
	}
	return id, nil
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// setFlags reports which flags were given explicitly.
func setFlags(fs *flag.FlagSet) map[string]bool {
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

func (a *app) browseProducts(ctx context.Context, args []string) error {
	fs := newFlags("products")
	search := fs.String("search", "", "name or description substring")
	category := fs.String("category", model.AllCategoryID, "category id")
	sort := fs.String("sort", string(query.SortLatest), "latest, oldest, name, price-asc or price-desc")
	page := fs.Int("page", 1, "page number")
	if _, err := parse(fs, args, false); err != nil {
		return err
	}

	b := catalog.NewBrowser(a.products, a.pageSize)
	if err := b.Refresh(ctx); err != nil {
		return err
	}
	b.SetSearch(*search)
	b.SetCategory(*category)
	b.SetSort(query.SortKey(*sort))
	if *page != 1 && !b.GoToPage(*page) {
		fmt.Fprintf(a.out, "page %d is out of range, showing page 1\n", *page)
	}

	v := b.Page()
	a.productTable(v.Items)
	fmt.Fprintln(a.out, v.Summary())
	if v.ShowPagination() {
		fmt.Fprintf(a.out, "Page %d of %d %v\n", v.Page, v.TotalPages, v.PageNumbers)
	}
	return nil
}

func (a *app) productTable(items []model.ProductWithCategory) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tSTATUS\tCREATED")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d %s\t%s\t%s\n",
			p.ID, p.Name, p.CategoryName(), catalog.FormatPrice(p.Price),
			p.StockSystem, p.Unit, p.StockStatus(), catalog.FormatDate(p.CreatedAt))
	}
	_ = tw.Flush()
}

func (a *app) showProduct(ctx context.Context, args []string) error {
	id, err := parse(newFlags("product"), args, true)
	if err != nil {
		return err
	}
	p, err := a.products.Product(ctx, id)
	if err != nil {
		return err
	}
	a.printProduct(p)
	return nil
}

func (a *app) printProduct(p model.Product) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	desc := ""
	if p.Description != nil {
		desc = *p.Description
	}
	cat := ""
	if p.CategoryID != nil {
		cat = *p.CategoryID
	}
	fmt.Fprintf(tw, "id\t%s\n", p.ID)
	fmt.Fprintf(tw, "name\t%s\n", p.Name)
	fmt.Fprintf(tw, "description\t%s\n", desc)
	fmt.Fprintf(tw, "price\t%s\n", catalog.FormatPrice(p.Price))
	fmt.Fprintf(tw, "stock\t%d system / %d physical %s (min %d)\n", p.StockSystem, p.StockPhysical, p.Unit, p.MinStock)
	fmt.Fprintf(tw, "status\t%s\n", p.StockStatus())
	fmt.Fprintf(tw, "category\t%s\n", cat)
	fmt.Fprintf(tw, "created\t%s\n", catalog.FormatDate(p.CreatedAt))
	if p.ShowLowStockWarning() {
		fmt.Fprintf(tw, "warning\tStock is running low!\n")
	}
	_ = tw.Flush()
}

func (a *app) lowStock(ctx context.Context, args []string) error {
	if _, err := parse(newFlags("low-stock"), args, false); err != nil {
		return err
	}
	items, err := a.products.LowStock(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tMIN\tSTATUS")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, p.StockSystem, p.MinStock, p.StockStatus())
	}
	return tw.Flush()
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &model.ValidationError{Field: "price", Reason: "must be a number"}
	}
	return d, nil
}

func (a *app) addProduct(ctx context.Context, args []string) error {
	fs := newFlags("product-add")
	name := fs.String("name", "", "product name")
	price := fs.String("price", "0", "unit price")
	stock := fs.Int("stock", 0, "system stock")
	minStock := fs.Int("min", 0, "minimum stock")
	unit := fs.String("unit", "", "unit of measure")
	category := fs.String("category", "", "category id")
	desc := fs.String("desc", "", "description")
	if _, err := parse(fs, args, false); err != nil {
		return err
	}
	pr, err := parsePrice(*price)
	if err != nil {
		return err
	}
	d := model.ProductDraft{
		Name:        *name,
		Price:       pr,
		StockSystem: *stock,
		MinStock:    *minStock,
		Unit:        *unit,
	}
	seen := setFlags(fs)
	if seen["category"] {
		d.CategoryID = category
	}
	if seen["desc"] {
		d.Description = desc
	}
	p, err := a.products.Create(ctx, d)
	if err != nil {
		return err
	}
	a.printProduct(p)
	return nil
}

func (a *app) updateProduct(ctx context.Context, args []string) error {
	fs := newFlags("product-update")
	name := fs.String("name", "", "product name")
	price := fs.String("price", "", "unit price")
	stock := fs.Int("stock", 0, "system stock")
	physical := fs.Int("physical", 0, "physical stock")
	minStock := fs.Int("min", 0, "minimum stock")
	unit := fs.String("unit", "", "unit of measure")
	category := fs.String("category", "", "category id")
	desc := fs.String("desc", "", "description")
	id, err := parse(fs, args, true)
	if err != nil {
		return err
	}

	var p model.ProductPatch
	seen := setFlags(fs)
	if seen["name"] {
		p.Name = name
	}
	if seen["price"] {
		pr, err := parsePrice(*price)
		if err != nil {
			return err
		}
		p.Price = &pr
	}
	if seen["stock"] {
		p.StockSystem = stock
	}
	if seen["physical"] {
		p.StockPhysical = physical
	}
	if seen["min"] {
		p.MinStock = minStock
	}
	if seen["unit"] {
		p.Unit = unit
	}
	if seen["category"] {
		p.CategoryID = category
	}
	if seen["desc"] {
		p.Description = desc
	}
	out, err := a.products.Update(ctx, id, p)
	if err != nil {
		return err
	}
	a.printProduct(out)
	return nil
}

func (a *app) removeProduct(ctx context.Context, args []string) error {
	id, err := parse(newFlags("product-rm"), args, true)
	if err != nil {
		return err
	}
	if err := a.products.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %s deleted\n", id)
	return nil
}

func (a *app) listCategories(ctx context.Context, args []string) error {
	if _, err := parse(newFlags("categories"), args, false); err != nil {
		return err
	}
	cats, err := a.products.Categories(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSLUG\tICON\tCOLOR")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Slug, c.Icon, c.Color)
	}
	return tw.Flush()
}

func (a *app) addCategory(ctx context.Context, args []string) error {
	fs := newFlags("category-add")
	d := model.CategoryDraft{}
	fs.StringVar(&d.Name, "name", "", "category name")
	fs.StringVar(&d.Slug, "slug", "", "url slug, derived from the name when empty")
	fs.StringVar(&d.Description, "desc", "", "description")
	fs.StringVar(&d.Icon, "icon", "", "emoji icon")
	fs.StringVar(&d.Color, "color", "", "hex color")
	if _, err := parse(fs, args, false); err != nil {
		return err
	}
	c, err := a.products.CreateCategory(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %s created (%s)\n", c.ID, c.Slug)
	return nil
}

func (a *app) removeCategory(ctx context.Context, args []string) error {
	id, err := parse(newFlags("category-rm"), args, true)
	if err != nil {
		return err
	}
	if err := a.products.DeleteCategory(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Category %s deleted\n", id)
	return nil
}

func (a *app) listTasks(ctx context.Context, args []string) error {
	fs := newFlags("tasks")
	search := fs.String("search", "", "title or description substring")
	if _, err := parse(fs, args, false); err != nil {
		return err
	}
	tasks, err := a.tasks.Tasks(ctx, *search)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Priority, catalog.StatusLabel(t.Status), t.DueDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found")
	}
	return nil
}

func (a *app) showTask(ctx context.Context, args []string) error {
	id, err := parse(newFlags("task"), args, true)
	if err != nil {
		return err
	}
	t, err := a.tasks.Task(ctx, id)
	if err != nil {
		return err
	}
	a.printTask(t)
	return nil
}

func (a *app) printTask(t model.Task) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "id\t%s\n", t.ID)
	fmt.Fprintf(tw, "title\t%s\n", t.Title)
	fmt.Fprintf(tw, "description\t%s\n", t.Description)
	fmt.Fprintf(tw, "priority\t%s\n", t.Priority)
	fmt.Fprintf(tw, "status\t%s\n", catalog.StatusLabel(t.Status))
	fmt.Fprintf(tw, "due\t%s\n", t.DueDate)
	_ = tw.Flush()
}

func (a *app) addTask(ctx context.Context, args []string) error {
	fs := newFlags("task-add")
	var d model.TaskDraft
	fs.StringVar(&d.Title, "title", "", "task title")
	fs.StringVar(&d.Description, "desc", "", "description")
	priority := fs.String("priority", "", "low, medium or high")
	fs.StringVar(&d.DueDate, "due", "", "due date, YYYY-MM-DD")
	if _, err := parse(fs, args, false); err != nil {
		return err
	}
	d.Priority = model.Priority(*priority)
	t, err := a.tasks.Create(ctx, d)
	if err != nil {
		return err
	}
	a.printTask(t)
	return nil
}

func (a *app) updateTask(ctx context.Context, args []string) error {
	fs := newFlags("task-update")
	title := fs.String("title", "", "task title")
	desc := fs.String("desc", "", "description")
	priority := fs.String("priority", "", "low, medium or high")
	due := fs.String("due", "", "due date, YYYY-MM-DD")
	status := fs.String("status", "", "pending, in-progress or completed")
	id, err := parse(fs, args, true)
	if err != nil {
		return err
	}
	var p model.TaskPatch
	seen := setFlags(fs)
	if seen["title"] {
		p.Title = title
	}
	if seen["desc"] {
		p.Description = desc
	}
	if seen["priority"] {
		pr := model.Priority(*priority)
		p.Priority = &pr
	}
	if seen["due"] {
		p.DueDate = due
	}
	if seen["status"] {
		st := model.Status(*status)
		p.Status = &st
	}
	t, err := a.tasks.Update(ctx, id, p)
	if err != nil {
		return err
	}
	a.printTask(t)
	return nil
}

func (a *app) toggleTask(ctx context.Context, args []string) error {
	id, err := parse(newFlags("task-toggle"), args, true)
	if err != nil {
		return err
	}
	t, err := a.tasks.ToggleStatus(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task %s is now %s\n", t.ID, catalog.StatusLabel(t.Status))
	return nil
}

func (a *app) removeTask(ctx context.Context, args []string) error {
	id, err := parse(newFlags("task-rm"), args, true)
	if err != nil {
		return err
	}
	if err := a.tasks.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task %s deleted\n", id)
	return nil
}
