package menu

import (
	"context"
	"errors"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/presentation"
)

func (m *Menu) shoppingActions() []action {
	return []action{
		{"Exibir Listas", func(ctx context.Context) error { return m.show(ctx, app.DomainShopping) }},
		{"Cadastrar Lista", m.createList},
		{"Renomear Lista", m.renameList},
		{"Remover Lista", m.deleteList},
		{"Adicionar Item", m.addListItem},
		{"Remover Item", m.removeListItem},
		{"Atualizar Quantidade", m.updateListQuantity},
		{"Calcular Total", m.listTotal},
		{"Limpar Lista", m.clearList},
		{"Gerar Lista de Reposição", m.restockList},
	}
}

func (m *Menu) createList(ctx context.Context) error {
	m.header("Cadastrar Lista de Compras")
	desc, err := m.readText("Descrição: ")
	if err != nil {
		return err
	}
	id, err := m.app.Run(ctx, app.DomainShopping, "create", func() (int, error) {
		return m.app.Shopping.Create(desc)
	})
	if err != nil {
		return err
	}
	m.ok("Lista de compras criada com ID: %d", id)
	return nil
}

func (m *Menu) renameList(ctx context.Context) error {
	listID, err := m.selectList()
	if err != nil {
		return err
	}
	desc, err := m.readText("Nova Descrição: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainShopping, "rename", func() (int, error) {
		return listID, m.app.Shopping.UpdateDescription(listID, desc)
	})
	if err != nil {
		return err
	}
	m.ok("Descrição da lista atualizada!")
	return nil
}

func (m *Menu) deleteList(ctx context.Context) error {
	id, err := m.readInt("Digite o ID da lista: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainShopping, "delete", func() (int, error) {
		if !m.app.Shopping.Delete(id) {
			return id, domain.NotFound(domain.EntityShoppingList, "shopping list %d not found", id)
		}
		return id, nil
	})
	if err != nil {
		return err
	}
	m.ok("Lista removida com sucesso!")
	return nil
}

func (m *Menu) selectList() (int, error) {
	id, err := m.readInt("ID da Lista: ")
	if err != nil {
		return 0, err
	}
	if _, ok := m.app.Shopping.FindByID(id); !ok {
		return 0, domain.NotFound(domain.EntityShoppingList, "shopping list %d not found", id)
	}
	return id, nil
}

func (m *Menu) addListItem(ctx context.Context) error {
	listID, err := m.selectList()
	if err != nil {
		return err
	}
	item, err := m.selectItem("ID do Item (do catálogo): ")
	if err != nil {
		return err
	}
	m.println("Preço unitário: " + presentation.Money(item.UnitPrice()))
	qty, err := m.readInt("Quantidade: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainShopping, "add_item", func() (int, error) {
		return listID, m.app.Shopping.AddItem(listID, item.ID(), item.Name(), qty, item.UnitPrice())
	})
	if err != nil {
		return err
	}
	m.ok("Item adicionado à lista!")
	return nil
}

func (m *Menu) removeListItem(ctx context.Context) error {
	listID, err := m.selectList()
	if err != nil {
		return err
	}
	itemID, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainShopping, "remove_item", func() (int, error) {
		return listID, m.app.Shopping.RemoveItem(listID, itemID)
	})
	if err != nil {
		return err
	}
	m.ok("Item removido da lista!")
	return nil
}

func (m *Menu) updateListQuantity(ctx context.Context) error {
	listID, err := m.selectList()
	if err != nil {
		return err
	}
	itemID, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Nova Quantidade: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainShopping, "update_quantity", func() (int, error) {
		return listID, m.app.Shopping.UpdateQuantity(listID, itemID, qty)
	})
	if err != nil {
		return err
	}
	m.ok("Quantidade atualizada!")
	return nil
}

func (m *Menu) listTotal(context.Context) error {
	listID, err := m.selectList()
	if err != nil {
		return err
	}
	total, err := m.app.Shopping.CalculateTotal(listID)
	if err != nil {
		return err
	}
	m.header("TOTAL")
	m.println(presentation.Money(total))
	return nil
}

func (m *Menu) clearList(ctx context.Context) error {
	listID, err := m.selectList()
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainShopping, "clear", func() (int, error) {
		return listID, m.app.Shopping.Clear(listID)
	})
	if err != nil {
		return err
	}
	m.ok("Lista de compras limpa!")
	return nil
}

func (m *Menu) restockList(ctx context.Context) error {
	desc, err := m.readText("Descrição (vazio para \"" + app.DefaultRestockDescription + "\"): ")
	if err != nil {
		return err
	}
	id, err := m.app.RestockList(ctx, desc)
	if errors.Is(err, app.ErrNothingToRestock) {
		m.warn("O estoque cobre todos os pedidos pendentes.")
		return nil
	}
	if err != nil {
		return err
	}
	m.ok("Lista de reposição criada com ID: %d", id)
	if l, ok := m.app.Shopping.FindByID(id); ok {
		m.println("")
		m.print(presentation.ShoppingListText(l))
	}
	return nil
}
