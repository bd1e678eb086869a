package menu

import (
	"context"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/catalog"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

func (m *Menu) catalogActions() []action {
	return []action{
		{"Exibir Catálogo", func(ctx context.Context) error { return m.show(ctx, app.DomainCatalog) }},
		{"Cadastrar Item", m.registerItem},
		{"Remover Item", m.deleteItem},
		{"Atualizar Item", m.updateItem},
		{"Buscar Item por Nome", m.findItemByName},
	}
}

func (m *Menu) registerItem(ctx context.Context) error {
	m.header("Cadastrar Item no Catálogo")
	name, err := m.readText("Nome do Item: ")
	if err != nil {
		return err
	}
	price, err := m.readFloat("Preço unitário: R$ ")
	if err != nil {
		return err
	}
	id, err := m.app.Run(ctx, app.DomainCatalog, "register", func() (int, error) {
		return m.app.Catalog.Register(name, price)
	})
	if err != nil {
		return err
	}
	m.ok("Item cadastrado no catálogo com ID: %d", id)
	return nil
}

func (m *Menu) deleteItem(ctx context.Context) error {
	id, err := m.readInt("Digite o ID do item: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainCatalog, "delete", func() (int, error) {
		if !m.app.Catalog.Delete(id) {
			return id, domain.NotFound(domain.EntityItem, "item %d not found", id)
		}
		return id, nil
	})
	if err != nil {
		return err
	}
	m.ok("Item removido do catálogo com sucesso!")
	return nil
}

func (m *Menu) updateItem(ctx context.Context) error {
	id, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	if _, ok := m.app.Catalog.FindByID(id); !ok {
		return domain.NotFound(domain.EntityItem, "item %d not found", id)
	}
	name, err := m.readText("Novo Nome: ")
	if err != nil {
		return err
	}
	price, err := m.readFloat("Novo Preço: R$ ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainCatalog, "update", func() (int, error) {
		return id, m.app.Catalog.Update(id, name, price)
	})
	if err != nil {
		return err
	}
	m.ok("Item atualizado com sucesso!")
	return nil
}

func (m *Menu) findItemByName(context.Context) error {
	name, err := m.readText("Nome do Item: ")
	if err != nil {
		return err
	}
	item, ok := m.app.Catalog.FindByName(name)
	if !ok {
		m.warn("Item não encontrado no catálogo!")
		return nil
	}
	m.println("\n" + item.Display())
	return nil
}

// selectItem reads a catalog id and echoes the chosen item.
func (m *Menu) selectItem(prompt string) (*catalog.Item, error) {
	id, err := m.readInt(prompt)
	if err != nil {
		return nil, err
	}
	item, ok := m.app.Catalog.FindByID(id)
	if !ok {
		m.println("Dica: Cadastre o item no catálogo primeiro (Menu Catálogo de Itens).")
		return nil, domain.NotFound(domain.EntityItem, "item %d not found in catalog", id)
	}
	m.println("Item selecionado: " + item.Name())
	return item, nil
}
